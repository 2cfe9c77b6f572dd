// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package explorer

import (
	"math"

	"github.com/tomtom215/mrrakc/internal/models"
)

// tileSize is the pixel size of one Web Mercator tile at zoom 0, as used by
// vector map renderers.
const tileSize = 512

// maxMercatorLat is the latitude at which Web Mercator is cut off.
const maxMercatorLat = 85.0511287798066

// Camera is a map view: center and zoom.
type Camera struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Zoom      float64 `json:"zoom"`
}

// ViewportOptions constrains Fit.
type ViewportOptions struct {
	// Width and Height are the map size in pixels.
	Width  float64
	Height float64
	// Padding is kept clear on every side of the fitted bounds.
	Padding float64
	// MaxZoom caps the fitted zoom so small clusters are not over-zoomed.
	MaxZoom float64
	// SinglePointZoom is used when every visible point is at one position.
	SinglePointZoom float64
	// Default is the camera used when no point is visible.
	Default Camera
}

// DefaultViewport returns the explorer's built-in viewport.
func DefaultViewport() ViewportOptions {
	return ViewportOptions{
		Width:           1024,
		Height:          768,
		Padding:         100,
		MaxZoom:         16,
		SinglePointZoom: 16,
		Default:         Camera{Longitude: -7.61, Latitude: 33.59, Zoom: 12},
	}
}

// Fit returns the camera showing every point. One point, or points that
// all share a position, get a direct center at SinglePointZoom; bounds of
// zero area cannot be fitted. No points yields the default camera.
func Fit(points []models.MapPoint, opts ViewportOptions) Camera {
	if len(points) == 0 {
		return opts.Default
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		x, y := project(p.Location.Longitude, p.Location.Latitude)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	dx, dy := maxX-minX, maxY-minY
	if dx == 0 && dy == 0 {
		lon, lat := unproject(minX, minY)
		return Camera{Longitude: lon, Latitude: lat, Zoom: opts.SinglePointZoom}
	}

	availW := math.Max(opts.Width-2*opts.Padding, 1)
	availH := math.Max(opts.Height-2*opts.Padding, 1)

	zoom := math.Inf(1)
	if dx > 0 {
		zoom = math.Log2(availW / (dx * tileSize))
	}
	if dy > 0 {
		zoom = math.Min(zoom, math.Log2(availH/(dy*tileSize)))
	}
	zoom = math.Max(0, math.Min(zoom, opts.MaxZoom))

	lon, lat := unproject((minX+maxX)/2, (minY+maxY)/2)
	return Camera{Longitude: lon, Latitude: lat, Zoom: zoom}
}

// project converts a position to normalized Web Mercator coordinates in
// [0,1], y growing southwards.
func project(lon, lat float64) (x, y float64) {
	lat = math.Max(-maxMercatorLat, math.Min(maxMercatorLat, lat))
	x = (lon + 180) / 360
	latRad := lat * math.Pi / 180
	y = (1 - math.Log(math.Tan(math.Pi/4+latRad/2))/math.Pi) / 2
	return x, y
}

// unproject is the inverse of project.
func unproject(x, y float64) (lon, lat float64) {
	lon = x*360 - 180
	latRad := math.Atan(math.Sinh(math.Pi * (1 - 2*y)))
	lat = latRad * 180 / math.Pi
	return lon, lat
}
