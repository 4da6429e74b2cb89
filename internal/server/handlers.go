package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mohammed-shakir/hexgrid/internal/covering"
	"github.com/mohammed-shakir/hexgrid/pkg/h3"
)

// childrenLimit caps the size of a children listing response.
const childrenLimit = 10000

type Handlers struct {
	svc *covering.Service
	log *slog.Logger
}

func NewHandlers(svc *covering.Service, log *slog.Logger) *Handlers {
	return &Handlers{svc: svc, log: log}
}

type coverRequest struct {
	covering.GeometryDoc
	Resolution int `json:"resolution"`
}

type coverResponse struct {
	Count int      `json:"count"`
	Cells []string `json:"cells"`
}

func cellStrings(cells []h3.Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.String()
	}
	return out
}

func (h *Handlers) Cover(w http.ResponseWriter, r *http.Request) {
	var body coverRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "parse body: "+err.Error())
		return
	}
	req, err := covering.ParseRequest(body.GeometryDoc, body.Resolution)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	cells, err := h.svc.Cover(r.Context(), req)
	if err != nil {
		var tooLarge *covering.ErrTooLarge
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		h.log.Error("cover failed", "err", err)
		writeError(w, http.StatusInternalServerError, "covering failed")
		return
	}
	writeJSON(w, http.StatusOK, coverResponse{Count: len(cells), Cells: cellStrings(cells)})
}

func (h *Handlers) CoverBatch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Requests []coverRequest `json:"requests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "parse body: "+err.Error())
		return
	}
	if len(body.Requests) == 0 {
		writeError(w, http.StatusBadRequest, "empty batch")
		return
	}
	reqs := make([]covering.Request, len(body.Requests))
	for i, cr := range body.Requests {
		req, err := covering.ParseRequest(cr.GeometryDoc, cr.Resolution)
		if err != nil {
			writeError(w, http.StatusBadRequest, "request "+strconv.Itoa(i)+": "+err.Error())
			return
		}
		reqs[i] = req
	}
	results, err := h.svc.CoverBatch(r.Context(), reqs)
	if err != nil {
		var tooLarge *covering.ErrTooLarge
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		h.log.Error("cover batch failed", "err", err)
		writeError(w, http.StatusInternalServerError, "covering failed")
		return
	}
	out := make([]coverResponse, len(results))
	for i, cells := range results {
		out[i] = coverResponse{Count: len(cells), Cells: cellStrings(cells)}
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": out})
}

func pathCell(w http.ResponseWriter, r *http.Request) (h3.Cell, bool) {
	c, err := h3.ParseCell(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return c, true
}

func queryRes(w http.ResponseWriter, r *http.Request) (h3.Resolution, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("res"))
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter: res")
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "res: "+err.Error())
		return 0, false
	}
	res, err := h3.NewResolution(n)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return res, true
}

func (h *Handlers) CellInfo(w http.ResponseWriter, r *http.Request) {
	c, ok := pathCell(w, r)
	if !ok {
		return
	}
	center := c.LatLng()
	writeJSON(w, http.StatusOK, map[string]any{
		"index":      c.String(),
		"resolution": int(c.Resolution()),
		"base_cell":  int(c.Base()),
		"pentagon":   c.IsPentagon(),
		"center": map[string]float64{
			"lat": center.LatDegrees(),
			"lng": center.LngDegrees(),
		},
		"avg_area_km2": c.Resolution().AreaKm2(),
	})
}

func (h *Handlers) CellParent(w http.ResponseWriter, r *http.Request) {
	c, ok := pathCell(w, r)
	if !ok {
		return
	}
	res, ok := queryRes(w, r)
	if !ok {
		return
	}
	parent, ok := c.Parent(res)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "no parent at a finer resolution")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"index": parent.String()})
}

func (h *Handlers) CellChildren(w http.ResponseWriter, r *http.Request) {
	c, ok := pathCell(w, r)
	if !ok {
		return
	}
	res, ok := queryRes(w, r)
	if !ok {
		return
	}
	count, ok := c.ChildrenCount(res)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "no children at a coarser resolution")
		return
	}
	if count > childrenLimit {
		writeError(w, http.StatusRequestEntityTooLarge,
			"children listing would contain "+strconv.FormatUint(count, 10)+" cells")
		return
	}
	cells := make([]string, 0, count)
	for child := range c.Children(res) {
		cells = append(cells, child.String())
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": len(cells), "cells": cells})
}

func (h *Handlers) CellNeighbors(w http.ResponseWriter, r *http.Request) {
	c, ok := pathCell(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cells": cellStrings(c.Neighbors())})
}

func (h *Handlers) CellPosition(w http.ResponseWriter, r *http.Request) {
	c, ok := pathCell(w, r)
	if !ok {
		return
	}
	res, ok := queryRes(w, r)
	if !ok {
		return
	}
	pos, ok := c.ChildPosition(res)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "no position under a finer resolution")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"position": pos})
}

func (h *Handlers) CellLocalIJ(w http.ResponseWriter, r *http.Request) {
	c, ok := pathCell(w, r)
	if !ok {
		return
	}
	anchor, err := h3.ParseCell(strings.TrimSpace(r.URL.Query().Get("anchor")))
	if err != nil {
		writeError(w, http.StatusBadRequest, "anchor: "+err.Error())
		return
	}
	ij, err := c.ToLocalIJ(anchor)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"i": ij.I(), "j": ij.J()})
}

func (h *Handlers) IndexLatLng(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(strings.TrimSpace(q.Get("lat")), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "lat: invalid number")
		return
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(q.Get("lng")), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "lng: invalid number")
		return
	}
	res, ok := queryRes(w, r)
	if !ok {
		return
	}
	ll, err := h3.NewLatLngDegrees(lat, lng)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h3.LatLngToCell(ll, res)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"index": c.String()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
