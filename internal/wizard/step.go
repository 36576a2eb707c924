package wizard

import "fmt"

// Step is a wizard page. Steps are ordered; the zero value is the first.
type Step int

const (
	StepBasic Step = iota
	StepTemplate
	StepRecipients
	StepAdvanced
)

// Steps lists every step in display order.
var Steps = []Step{StepBasic, StepTemplate, StepRecipients, StepAdvanced}

var stepNames = map[Step]string{
	StepBasic:      "basic",
	StepTemplate:   "template",
	StepRecipients: "recipients",
	StepAdvanced:   "advanced",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

func (s Step) Valid() bool {
	return s >= StepBasic && s <= StepAdvanced
}

func (s Step) First() bool { return s == StepBasic }

func (s Step) Last() bool { return s == StepAdvanced }

// ParseStep maps a step name such as "template" to its Step.
func ParseStep(name string) (Step, error) {
	for step, n := range stepNames {
		if n == name {
			return step, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStep, name)
}
