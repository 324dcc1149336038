// Package controller owns the state behind the research page: the display
// region, the loading and submit flags and the tracked in-flight request.
//
// A Controller is not safe for concurrent use. The caller's event loop owns
// it; only Pending.Run may execute on another goroutine.
package controller

import (
	"context"
	"time"

	"github.com/apex/log"

	"github.com/mithrel/gyani/internal/clip"
	"github.com/mithrel/gyani/internal/render"
	"github.com/mithrel/gyani/pkg/api"
	"github.com/mithrel/gyani/pkg/models"
)

// Generator performs one generation request.
type Generator interface {
	Generate(ctx context.Context, req api.GenerationRequest) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, req api.GenerationRequest) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, req api.GenerationRequest) (string, error) {
	return f(ctx, req)
}

// Controller owns the display region and the request lifecycle: the
// pending handle, the loading flag and whether submission is enabled. It is
// not safe for concurrent use; only Pending.Run may leave its goroutine.
type Controller struct {
	gen     Generator
	catalog *models.Catalog
	clip    clip.Writer
	log     log.Interface

	region        Region
	loading       bool
	submitEnabled bool
	pending       *Pending
	notices       []Notice
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Defaults to log.Log.
func WithLogger(l log.Interface) Option {
	return func(c *Controller) { c.log = l }
}

// New returns a controller showing the placeholder with submission enabled.
func New(gen Generator, catalog *models.Catalog, cb clip.Writer, opts ...Option) *Controller {
	c := &Controller{
		gen:           gen,
		catalog:       catalog,
		clip:          cb,
		log:           log.Log,
		region:        placeholder(),
		submitEnabled: true,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Pending is the handle of one in-flight request.
type Pending struct {
	ID      string
	Request api.GenerationRequest
	Started time.Time

	gen Generator
	log log.Interface
}

// Run performs the outbound call. It touches no controller state and may be
// called from any goroutine, once.
func (p *Pending) Run(ctx context.Context) api.GenerationResult {
	text, err := p.gen.Generate(ctx, p.Request)
	ll := p.log.WithField("id", p.ID).WithField("took", time.Since(p.Started).Round(time.Millisecond))
	if err != nil {
		ll.WithError(err).Debug("controller: request returned an error")
		return api.Failure(err)
	}
	ll.WithField("bytes", len(text)).Debug("controller: request returned")
	return api.Success(text)
}

// Submit validates prompt and starts tracking a new request for model.
// An empty prompt yields a *ValidationError and an info notice; nothing else
// changes. Otherwise loading is shown, submission disabled and the region
// reset. An earlier pending request is not cancelled, only forgotten.
func (c *Controller) Submit(prompt, model string) (*Pending, error) {
	if model == "" && c.catalog != nil {
		model = c.catalog.First()
	}
	req := api.NewGenerationRequest(prompt, model)
	if req.Empty() {
		c.notify(NoticeInfo, MsgEmptyPrompt)
		return nil, &ValidationError{Field: "prompt", Message: MsgEmptyPrompt}
	}

	c.loading = true
	c.submitEnabled = false
	c.region = placeholder()

	p := &Pending{
		ID:      api.NewID(),
		Request: req,
		Started: time.Now(),
		gen:     c.gen,
		log:     c.log,
	}
	if c.pending != nil {
		c.log.WithFields(log.Fields{"id": c.pending.ID, "next": p.ID}).Debug("controller: replacing pending request")
	}
	c.pending = p
	if c.catalog != nil && !c.catalog.Has(req.Model) {
		c.log.WithField("model", req.Model).Debug("controller: model not in catalog, sending as is")
	}
	c.log.WithFields(log.Fields{
		"id":     p.ID,
		"model":  req.Model,
		"prompt": req.Fingerprint(),
	}).Info("controller: submitted")
	return p, nil
}

// Settle renders res into the region and then, whatever the outcome, hides
// loading, re-enables submission and clears the tracked handle. The handle
// is cleared even when p is not the one tracked, so the last request to
// settle decides what the region shows.
func (c *Controller) Settle(p *Pending, res api.GenerationResult) {
	ll := c.log.WithField("model", p.Request.Model).WithField("id", p.ID)
	if !p.Started.IsZero() {
		ll = ll.WithField("took", time.Since(p.Started).Round(time.Millisecond))
	}

	if res.Failed() {
		msg := res.ErrorMessage
		if msg == "" && res.Err != nil {
			msg = res.Err.Error()
		}
		c.region = Region{State: StateError, Message: ErrorText(msg)}
		ll.WithField("error", msg).Warn("controller: request failed")
	} else {
		c.region = Region{
			State:     StateContent,
			ModelID:   p.Request.Model,
			ModelName: c.ModelName(p.Request.Model),
			Raw:       res.RawText,
			Content:   render.Format(res.RawText),
		}
		ll.Info("controller: rendered")
	}

	c.loading = false
	c.submitEnabled = true
	c.pending = nil
}

// Generate submits, runs and settles on the calling goroutine. It returns
// the validation error or the request's error, after the region and notices
// have been updated.
func (c *Controller) Generate(ctx context.Context, prompt, model string) error {
	p, err := c.Submit(prompt, model)
	if err != nil {
		return err
	}
	res := p.Run(ctx)
	c.Settle(p, res)
	return res.Err
}

// Clear resets the region to the placeholder. It does not touch any
// in-flight request.
func (c *Controller) Clear() {
	c.region = placeholder()
}

// CopyCurrentOutput writes the plain text of the rendered content to the
// clipboard and posts a notice either way.
func (c *Controller) CopyCurrentOutput() error {
	var err error
	if !c.region.HasContent() {
		err = &ClipboardError{Err: ErrNoContent}
	} else if werr := c.clip.WriteText(c.region.PlainText()); werr != nil {
		err = &ClipboardError{Err: werr}
	}
	if err != nil {
		c.log.WithError(err).Warn("controller: copy failed")
		c.notify(NoticeError, MsgCopyFailed)
		return err
	}
	c.notify(NoticeSuccess, MsgCopied)
	return nil
}

// ModelName resolves a model id to its display name, echoing unknown ids.
func (c *Controller) ModelName(id string) string {
	if c.catalog == nil {
		return id
	}
	return c.catalog.DisplayName(id)
}

func (c *Controller) Region() Region { return c.region }

func (c *Controller) Loading() bool { return c.loading }

func (c *Controller) SubmitEnabled() bool { return c.submitEnabled }

// Pending returns the tracked in-flight request, or nil.
func (c *Controller) Pending() *Pending { return c.pending }

func (c *Controller) Catalog() *models.Catalog { return c.catalog }

// TakeNotice pops the oldest undelivered notice.
func (c *Controller) TakeNotice() (Notice, bool) {
	if len(c.notices) == 0 {
		return Notice{}, false
	}
	n := c.notices[0]
	c.notices = c.notices[1:]
	return n, true
}

func (c *Controller) notify(kind NoticeKind, text string) {
	c.notices = append(c.notices, Notice{Kind: kind, Text: text})
}
