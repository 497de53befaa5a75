package page

import (
	"context"
	"log/slog"

	"github.com/git-217/go-carDealership/internal/model"
)

// State is a step of one form submission.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateRejected
	StateFetching
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateRejected:
		return "rejected"
	case StateFetching:
		return "fetching"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Searcher performs the network call for a built search URL.
type Searcher interface {
	Search(ctx context.Context, url string) ([]model.SearchResult, error)
}

// Elements are the controls the search form reads from and writes to.
type Elements struct {
	Brand      ValueSource
	Model      ValueSource
	Year       ValueSource
	Price      ValueSource
	Results    HTMLSink
	FieldError Toggle
}

// Outcome describes how a submission ended.
type Outcome struct {
	// Terminal is Rejected, Succeeded or Failed.
	Terminal   State
	Path       []State
	Validation Validation
	Results    int
	Err        error
}

// SearchController validates the form, runs at most one search and renders
// the table, the empty message or the error into the results region.
//
// Submissions are not sequenced: a slow earlier response may overwrite the
// results of a later one.
type SearchController struct {
	el       Elements
	searcher Searcher
	renderer *Renderer
	baseURL  string
	logger   *slog.Logger
}

func NewSearchController(el Elements, searcher Searcher, renderer *Renderer, baseURL string, logger *slog.Logger) *SearchController {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchController{
		el:       el,
		searcher: searcher,
		renderer: renderer,
		baseURL:  baseURL,
		logger:   logger,
	}
}

// Submit handles one form submission and always returns to idle.
func (c *SearchController) Submit(ctx context.Context) Outcome {
	out := Outcome{Path: []State{StateIdle, StateValidating}}

	c.el.FieldError.Hide()
	criteria := ReadCriteria(c.el)
	out.Validation = Validate(criteria)

	if !out.Validation.Valid() {
		if out.Validation.ShowsFieldError() {
			c.el.FieldError.Show()
		}
		c.el.Results.SetHTML(String(c.renderer.Error(out.Validation.Message)))
		return out.finish(StateRejected)
	}

	out.Path = append(out.Path, StateFetching)
	url := BuildSearchURL(c.baseURL, criteria)

	results, err := c.searcher.Search(ctx, url)
	if err != nil {
		c.logger.Error("search failed", "url", url, "error", err)
		c.el.Results.SetHTML(String(c.renderer.Error(FailureMessage)))
		out.Err = err
		return out.finish(StateFailed)
	}

	out.Results = len(results)
	if len(results) == 0 {
		c.el.Results.SetHTML(String(c.renderer.Message(NoResultsMessage)))
	} else {
		c.el.Results.SetHTML(String(c.renderer.Table(results)))
	}
	return out.finish(StateSucceeded)
}

func (o Outcome) finish(terminal State) Outcome {
	o.Terminal = terminal
	o.Path = append(o.Path, terminal, StateIdle)
	return o
}
