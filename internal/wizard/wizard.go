// Package wizard drives the four-step campaign editor: basic info, template,
// recipients and advanced options. It holds one draft campaign, talks to the
// console API to load and save it, and hands navigation to a Navigator.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"wa-console/internal/i18n"
	"wa-console/internal/observability"
	"wa-console/internal/store"
)

// CampaignAPI is the part of the console API the wizard needs
type CampaignAPI interface {
	ListTemplates(ctx context.Context) ([]store.Template, error)
	GetCampaign(ctx context.Context, id string) (store.Campaign, error)
	CreateCampaign(ctx context.Context, campaign store.Campaign) (store.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, campaign store.Campaign) (store.Campaign, error)
}

// Navigator moves the user to another screen once the wizard is done
type Navigator interface {
	Navigate(route string)
}

// RouteCampaigns is the campaign list screen.
const RouteCampaigns = "/campaigns"

// MockRecipientTotal stands in for the audience size until recipients are
// resolved server side.
const MockRecipientTotal = 1000

const defaultThrottleRate = 60

var (
	ErrClosed         = errors.New("wizard is closed")
	ErrLoadDiscarded  = errors.New("load result discarded")
	ErrUnknownStep    = errors.New("unknown wizard step")
	ErrUnknownTmpl    = errors.New("unknown template")
	ErrNotAtLastStep  = errors.New("saving is only offered on the last step")
	ErrSaveInProgress = errors.New("a save is already in progress")
)

type Wizard struct {
	api     CampaignAPI
	nav     Navigator
	catalog *i18n.Catalog
	lang    string
	logger  *observability.Logger

	mu         sync.Mutex
	step       Step
	draft      store.Campaign
	templates  []store.Template
	editing    bool
	closed     bool
	saving     bool
	loadSeq    uint64
	cancelLoad context.CancelFunc
}

type Option func(*Wizard)

// WithCatalog localizes labels and the preview placeholder.
func WithCatalog(catalog *i18n.Catalog, lang string) Option {
	return func(w *Wizard) {
		w.catalog = catalog
		w.lang = lang
	}
}

func WithLogger(logger *observability.Logger) Option {
	return func(w *Wizard) {
		w.logger = logger
	}
}

func New(api CampaignAPI, nav Navigator, opts ...Option) *Wizard {
	w := &Wizard{
		api:    api,
		nav:    nav,
		lang:   i18n.DefaultLanguage,
		logger: observability.NewNopLogger(),
		step:   StepBasic,
		draft:  DefaultDraft(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// DefaultDraft is the draft a new campaign starts from.
func DefaultDraft() store.Campaign {
	return store.Campaign{
		Type:         store.CampaignTypeBroadcast,
		Status:       store.CampaignStatusDraft,
		Audience:     store.CampaignAudience{ListIDs: []string{}, TagIDs: []string{}},
		ThrottleRate: defaultThrottleRate,
	}
}

// Load fetches the templates and, when campaignID is set, the campaign to
// edit. A newer Load or Close cancels this one; a result that arrives after
// that is dropped with ErrLoadDiscarded or ErrClosed.
func (w *Wizard) Load(ctx context.Context, campaignID string) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	if w.cancelLoad != nil {
		w.cancelLoad()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	w.cancelLoad = cancel
	w.loadSeq++
	seq := w.loadSeq
	w.mu.Unlock()
	defer cancel()

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	templates, err := w.api.ListTemplates(loadCtx)
	if err != nil {
		return w.loadFailed(ctx, seq, fmt.Errorf("failed to load templates: %w", err))
	}

	draft := DefaultDraft()
	if campaignID != "" {
		draft, err = w.api.GetCampaign(loadCtx, campaignID)
		if err != nil {
			return w.loadFailed(ctx, seq, fmt.Errorf("failed to load campaign: %w", err))
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.staleLocked(seq); err != nil {
		w.logger.Debug(ctx, "discarding wizard load result")
		return err
	}
	w.templates = templates
	w.draft = draft
	w.editing = campaignID != ""
	w.step = StepBasic
	w.cancelLoad = nil
	return nil
}

func (w *Wizard) loadFailed(ctx context.Context, seq uint64, err error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if stale := w.staleLocked(seq); stale != nil {
		return stale
	}
	w.logger.Error(ctx, "wizard load failed", err)
	return err
}

func (w *Wizard) staleLocked(seq uint64) error {
	if w.closed {
		return ErrClosed
	}
	if seq != w.loadSeq {
		return ErrLoadDiscarded
	}
	return nil
}

// Close tears the wizard down, cancelling any in-flight load and dropping
// the draft. A closed wizard rejects every further call.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closeLocked()
}

func (w *Wizard) closeLocked() {
	if w.cancelLoad != nil {
		w.cancelLoad()
		w.cancelLoad = nil
	}
	w.closed = true
	w.draft = DefaultDraft()
	w.templates = nil
	w.step = StepBasic
}

// Goto jumps to any step. Steps are never validated.
func (w *Wizard) Goto(step Step) error {
	if !step.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownStep, step)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	w.step = step
	return nil
}

// Advance moves to the next step. On the last step it saves and sends.
func (w *Wizard) Advance(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	if !w.step.Last() {
		w.step++
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	_, err := w.SaveAndSend(ctx)
	return err
}

// Retreat moves to the previous step. On the first step it leaves the
// wizard, discarding the draft, and reports exited.
func (w *Wizard) Retreat() (exited bool, err error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return false, ErrClosed
	}
	if !w.step.First() {
		w.step--
		w.mu.Unlock()
		return false, nil
	}
	w.closeLocked()
	w.mu.Unlock()

	w.nav.Navigate(RouteCampaigns)
	return true, nil
}

// SaveDraft stores the draft with status DRAFT.
func (w *Wizard) SaveDraft(ctx context.Context) (store.Campaign, error) {
	return w.save(ctx, func(c *store.Campaign) {
		c.Status = store.CampaignStatusDraft
	})
}

// SaveAndSend stores the draft as RUNNING with the mock recipient total.
func (w *Wizard) SaveAndSend(ctx context.Context) (store.Campaign, error) {
	return w.save(ctx, func(c *store.Campaign) {
		c.Status = store.CampaignStatusRunning
		c.Stats.Total = MockRecipientTotal
	})
}

// save issues exactly one upsert, POST for a new campaign and PUT otherwise,
// then closes the wizard and returns to the campaign list. The list
// re-fetches on its own.
func (w *Wizard) save(ctx context.Context, finalize func(*store.Campaign)) (store.Campaign, error) {
	w.mu.Lock()
	switch {
	case w.closed:
		w.mu.Unlock()
		return store.Campaign{}, ErrClosed
	case !w.step.Last():
		w.mu.Unlock()
		return store.Campaign{}, ErrNotAtLastStep
	case w.saving:
		w.mu.Unlock()
		return store.Campaign{}, ErrSaveInProgress
	}
	w.saving = true
	campaign := cloneCampaign(w.draft)
	w.mu.Unlock()

	finalize(&campaign)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID},
		observability.Field{Key: "campaign_status", Value: campaign.Status},
	)

	var (
		saved store.Campaign
		err   error
	)
	if campaign.ID == "" {
		saved, err = w.api.CreateCampaign(ctx, campaign)
	} else {
		saved, err = w.api.UpdateCampaign(ctx, campaign.ID, campaign)
	}

	w.mu.Lock()
	w.saving = false
	if err != nil {
		w.mu.Unlock()
		w.logger.Error(ctx, "failed to save campaign", err)
		return store.Campaign{}, err
	}
	w.closeLocked()
	w.mu.Unlock()

	w.logger.Info(ctx, "campaign saved from wizard")
	w.nav.Navigate(RouteCampaigns)
	return saved, nil
}

// SetBasic fills the basic step.
func (w *Wizard) SetBasic(title, campaignType string) error {
	return w.update(func(c *store.Campaign) {
		c.Title = title
		if campaignType != "" {
			c.Type = campaignType
		}
	})
}

// SelectTemplate records the template's id and name on the draft.
func (w *Wizard) SelectTemplate(templateID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}

	for _, t := range w.templates {
		if t.ID == templateID {
			w.draft.TemplateID = t.ID
			w.draft.TemplateName = t.Name
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownTmpl, templateID)
}

// SetAudience fills the recipients step.
func (w *Wizard) SetAudience(listIDs, tagIDs []string) error {
	return w.update(func(c *store.Campaign) {
		c.Audience = store.CampaignAudience{
			ListIDs: append([]string{}, listIDs...),
			TagIDs:  append([]string{}, tagIDs...),
		}
	})
}

// SetAdvanced fills the advanced step.
func (w *Wizard) SetAdvanced(retryFailed bool, throttleRate int, emailReport bool) error {
	return w.update(func(c *store.Campaign) {
		c.RetryFailed = retryFailed
		c.ThrottleRate = throttleRate
		c.EmailReport = emailReport
	})
}

func (w *Wizard) update(fn func(*store.Campaign)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	fn(&w.draft)
	return nil
}

// Preview is the selected template's BODY text verbatim, or a placeholder
// when no template is selected.
func (w *Wizard) Preview() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.draft.TemplateID != "" {
		for _, t := range w.templates {
			if t.ID == w.draft.TemplateID {
				return t.Body()
			}
		}
	}
	return w.text("wizard.template.previewPlaceholder")
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Draft returns a copy of the campaign being edited.
func (w *Wizard) Draft() store.Campaign {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneCampaign(w.draft)
}

func (w *Wizard) Templates() []store.Template {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]store.Template(nil), w.templates...)
}

func (w *Wizard) Editing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.editing
}

func (w *Wizard) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Title is the localized heading for create or edit mode.
func (w *Wizard) Title() string {
	if w.Editing() {
		return w.text("wizard.editTitle")
	}
	return w.text("wizard.createTitle")
}

// StepLabel is the localized name of step.
func (w *Wizard) StepLabel(step Step) string {
	return w.text("wizard.steps." + step.String())
}

var fallbackText = map[string]string{
	"wizard.template.previewPlaceholder": "Select a template to see a preview",
	"wizard.createTitle":                 "Create campaign",
	"wizard.editTitle":                   "Edit campaign",
}

func (w *Wizard) text(key string) string {
	if w.catalog != nil {
		return w.catalog.T(w.lang, key)
	}
	if s, ok := fallbackText[key]; ok {
		return s
	}
	return key
}

func cloneCampaign(c store.Campaign) store.Campaign {
	c.Audience = store.CampaignAudience{
		ListIDs: append([]string{}, c.Audience.ListIDs...),
		TagIDs:  append([]string{}, c.Audience.TagIDs...),
	}
	return c
}
