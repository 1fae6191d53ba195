package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

const defaultSceneName = "checker-room"

// Upper bounds on what a single request may ask the renderer to trace
const (
	maxRequestWidth   = 1000
	maxRequestSamples = 2000
)

// RenderRequest holds the query parameters shared by the render endpoints.
// Zero Width and Samples keep the scene's own camera settings.
type RenderRequest struct {
	Scene   string `json:"scene"`
	Width   int    `json:"width"`
	Samples int    `json:"samples"`
	Workers int    `json:"workers"` // 0 = one per logical CPU
	Seed    int64  `json:"seed"`
}

// cameraOverride returns the camera fields the request overrides
func (r RenderRequest) cameraOverride() renderer.CameraConfig {
	return renderer.CameraConfig{Width: r.Width, SamplesPerPixel: r.Samples}
}

// renderConfig returns the raytracer configuration for the request
func (r RenderRequest) renderConfig() renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	config.Workers = r.Workers
	config.Seed = r.Seed
	return config
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	TotalSamples     int     `json:"totalSamples"`
	AverageSamples   float64 `json:"averageSamples"`
	NonFiniteSamples int     `json:"nonFiniteSamples"`
	Workers          int     `json:"workers"`
	ElapsedMs        int64   `json:"elapsedMs"`
}

func newStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:      stats.TotalPixels,
		TotalSamples:     stats.TotalSamples,
		AverageSamples:   stats.AverageSamples(),
		NonFiniteSamples: stats.NonFiniteSamples,
		Workers:          stats.Workers,
		ElapsedMs:        stats.Elapsed.Milliseconds(),
	}
}

// ProgressUpdate is sent after every row a worker finishes
type ProgressUpdate struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// CompleteUpdate carries the finished image
type CompleteUpdate struct {
	Scene     string `json:"scene"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
}

// parseRenderRequest reads the render parameters from a query string
func parseRenderRequest(values url.Values) (RenderRequest, error) {
	req := RenderRequest{Scene: values.Get("scene"), Seed: renderer.DefaultSeed}
	if req.Scene == "" {
		req.Scene = defaultSceneName
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, 1, maxRequestWidth); err != nil {
		return req, err
	}
	if req.Samples, err = parseIntParam(values, "samples", 0, 1, maxRequestSamples); err != nil {
		return req, err
	}
	if req.Workers, err = parseIntParam(values, "workers", 0, 0, 1024); err != nil {
		return req, err
	}
	if req.Seed, err = parseInt64Param(values, "seed", renderer.DefaultSeed); err != nil {
		return req, err
	}
	return req, nil
}

// newRaytracer builds a raytracer for a scene using the request's render settings
func newRaytracer(sc *scene.Scene, req RenderRequest, logger core.Logger) *renderer.Raytracer {
	return renderer.NewRaytracer(sc.World, sc.Camera(), sc.Ambient, req.renderConfig(), logger)
}

// handleRender renders a built-in scene and returns it as a PNG
func (s *Server) handleRender(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	sc, err := scene.Create(req.Scene, req.cameraOverride())
	if err != nil {
		return errorJSON(c, http.StatusNotFound, err.Error())
	}

	return s.renderPNG(c, sc, req)
}

// handleRenderScene renders a scene description posted as JSON and returns it as a PNG
func (s *Server) handleRenderScene(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "failed to read request body")
	}

	sc, err := scene.Parse(data, req.cameraOverride())
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	if sc.CameraConfig.Width > maxRequestWidth || sc.CameraConfig.SamplesPerPixel > maxRequestSamples {
		return errorJSON(c, http.StatusBadRequest,
			fmt.Sprintf("scene exceeds %d pixels wide or %d samples per pixel", maxRequestWidth, maxRequestSamples))
	}

	return s.renderPNG(c, sc, req)
}

// renderPNG renders sc to completion and writes the image as the response body
func (s *Server) renderPNG(c echo.Context, sc *scene.Scene, req RenderRequest) error {
	rt := newRaytracer(sc, req, NewWebLogger(newRenderID(sc.Name), nil))

	img, stats, err := rt.Render(c.Request().Context())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to encode image")
	}

	c.Response().Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	c.Response().Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

type renderResult struct {
	img   *image.RGBA
	stats renderer.RenderStats
	err   error
}

// handleRenderStream renders a built-in scene while streaming progress and log lines as
// Server-Sent Events, finishing with a "complete" or "error" event
func (s *Server) handleRenderStream(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	sc, err := scene.Create(req.Scene, req.cameraOverride())
	if err != nil {
		return errorJSON(c, http.StatusNotFound, err.Error())
	}

	consoleChan := make(chan ConsoleMessage, 100)
	rt := newRaytracer(sc, req, NewWebLogger(newRenderID(sc.Name), consoleChan))

	progressChan := make(chan ProgressUpdate, rt.Progress().Total())
	rt.Progress().OnUpdate = func(current, total int) {
		select {
		case progressChan <- ProgressUpdate{Current: current, Total: total}:
		default:
		}
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	done := make(chan renderResult, 1)
	go func() {
		img, stats, err := rt.Render(ctx)
		done <- renderResult{img: img, stats: stats, err: err}
	}()

	setSSEHeaders(c)
	w := c.Response()

	for {
		select {
		case msg := <-consoleChan:
			writeSSEEvent(w, "console", msg)
		case update := <-progressChan:
			writeSSEEvent(w, "progress", update)
		case result := <-done:
			drainEvents(w, consoleChan, progressChan)
			if result.err != nil {
				writeSSEEvent(w, "error", map[string]string{"error": result.err.Error()})
				return nil
			}

			imageData, err := imageToBase64PNG(result.img)
			if err != nil {
				writeSSEEvent(w, "error", map[string]string{"error": err.Error()})
				return nil
			}
			writeSSEEvent(w, "complete", CompleteUpdate{
				Scene:     sc.Name,
				ImageData: imageData,
				Stats:     newStats(result.stats),
			})
			return nil
		}
	}
}

// drainEvents flushes events still buffered once the render has returned
func drainEvents(w *echo.Response, consoleChan <-chan ConsoleMessage, progressChan <-chan ProgressUpdate) {
	for {
		select {
		case update := <-progressChan:
			writeSSEEvent(w, "progress", update)
		case msg := <-consoleChan:
			writeSSEEvent(w, "console", msg)
		default:
			return
		}
	}
}

// setSSEHeaders sets the headers for a Server-Sent Events response
func setSSEHeaders(c echo.Context) {
	header := c.Response().Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)
}

// writeSSEEvent writes one named event with a JSON payload and flushes it
func writeSSEEvent(w *echo.Response, event string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
	w.Flush()
}

// imageToBase64PNG converts an image to a base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func newRenderID(sceneName string) string {
	return fmt.Sprintf("%s-%d", sceneName, time.Now().UnixNano())
}
