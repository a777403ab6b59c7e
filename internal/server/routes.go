// SPDX-License-Identifier: MIT
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/katalvlaran/kanjipath/bfs"
	"github.com/katalvlaran/kanjipath/core"
	"github.com/katalvlaran/kanjipath/learnpath"
)

func (s *Server) registerRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Health check",
		Tags:        []string{"system"},
	}, s.handleHealth)

	huma.Register(s.api, huma.Operation{
		OperationID: "find-path",
		Method:      http.MethodGet,
		Path:        "/v1/path",
		Summary:     "Cheapest learning path between two characters",
		Tags:        []string{"paths"},
	}, s.handleFindPath)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-kanji",
		Method:      http.MethodGet,
		Path:        "/v1/kanji/{id}",
		Summary:     "Character attributes, outgoing edges and reach",
		Tags:        []string{"kanji"},
	}, s.handleGetKanji)
}

// --- Request/Response types for huma ---

// HealthBody is the JSON body of the health endpoint response.
type HealthBody struct {
	Status     string `json:"status" example:"ok" doc:"Health status"`
	Characters int    `json:"characters" doc:"Vertices in the loaded table"`
	Relations  int    `json:"relations" doc:"Edges in the loaded table"`
}

type healthOutput struct {
	Body HealthBody
}

type findPathInput struct {
	Source string `query:"source" required:"true" doc:"Character to start from"`
	Target string `query:"target" required:"true" doc:"Character to reach"`
}

// PathBody is the JSON body of a found learning path.
type PathBody struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Path   []string `json:"path"`
	Weight float64  `json:"weight"`
	Steps  int      `json:"steps" doc:"Characters on the path, both ends included"`
}

type findPathOutput struct {
	Body PathBody
}

type getKanjiInput struct {
	ID    string `path:"id"`
	Depth int    `query:"depth" minimum:"0" doc:"Limit reach to this many hops; 0 means unlimited"`
}

// EdgeBody is one outgoing relation of a character.
type EdgeBody struct {
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// ReachBody summarizes what a character unlocks.
type ReachBody struct {
	Reached  int `json:"reached" doc:"Characters reachable, the start included"`
	MaxDepth int `json:"max_depth" doc:"Longest chain of compositions in hops"`
}

// AttributesBody mirrors core.Attributes with JSON names.
type AttributesBody struct {
	Strokes     int `json:"strokes"`
	Grade       int `json:"grade"`
	JLPT        int `json:"jlpt"`
	RadicalFreq int `json:"radical_freq"`
	UsageFreq   int `json:"usage_freq"`
}

func attributesBody(a core.Attributes) AttributesBody {
	return AttributesBody{
		Strokes:     a.Strokes,
		Grade:       a.Grade,
		JLPT:        a.JLPT,
		RadicalFreq: a.RadicalFreq,
		UsageFreq:   a.UsageFreq,
	}
}

// KanjiBody is the JSON body of the kanji endpoint.
type KanjiBody struct {
	ID         string         `json:"id"`
	Attributes AttributesBody `json:"attributes"`
	Edges      []EdgeBody      `json:"edges"`
	Reach      ReachBody       `json:"reach"`
}

type getKanjiOutput struct {
	Body KanjiBody
}

func (s *Server) handleHealth(_ context.Context, _ *struct{}) (*healthOutput, error) {
	t := s.svc.Table()

	return &healthOutput{Body: HealthBody{
		Status:     "ok",
		Characters: t.Len(),
		Relations:  t.EdgeCount(),
	}}, nil
}

func (s *Server) handleFindPath(ctx context.Context, input *findPathInput) (*findPathOutput, error) {
	p, err := s.svc.FindPath(ctx, input.Source, input.Target)
	if err != nil {
		return nil, statusError(err)
	}

	return &findPathOutput{Body: PathBody{
		Source: input.Source,
		Target: input.Target,
		Path:   p.IDs,
		Weight: p.Weight,
		Steps:  p.Steps(),
	}}, nil
}

func (s *Server) handleGetKanji(ctx context.Context, input *getKanjiInput) (*getKanjiOutput, error) {
	t := s.svc.Table()
	v, err := t.Vertex(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound(fmt.Sprintf("character %q not found", input.ID))
	}

	res, err := bfs.BFS(t, input.ID, bfs.WithContext(ctx), bfs.WithMaxDepth(input.Depth))
	if err != nil {
		return nil, huma.Error500InternalServerError("computing reach", err)
	}

	edges := make([]EdgeBody, 0, len(v.Edges))
	for _, e := range v.Edges {
		edges = append(edges, EdgeBody{To: e.To, Weight: e.Weight})
	}

	return &getKanjiOutput{Body: KanjiBody{
		ID:         v.ID,
		Attributes: attributesBody(v.Attrs),
		Edges:      edges,
		Reach:      ReachBody{Reached: res.Reached(), MaxDepth: res.MaxDepth()},
	}}, nil
}

// statusError maps service outcomes onto HTTP statuses.
func statusError(err error) error {
	switch {
	case errors.Is(err, learnpath.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, learnpath.ErrUnreachable):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.Error503ServiceUnavailable("query interrupted", err)
	}

	switch learnpath.CodeOf(err) {
	case learnpath.CodeQueryBudgetExceeded:
		return huma.Error503ServiceUnavailable("query exceeded its step budget", err)
	case learnpath.CodeQueryInvalid:
		return huma.Error400BadRequest(err.Error())
	default:
		return huma.Error500InternalServerError(string(learnpath.CodeOf(err)), err)
	}
}
