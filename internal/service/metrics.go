package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var documentsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "miiverse_documents_rendered",
	Help: "XML documents rendered, by document and status",
}, []string{"document", "status"})

var documentRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "miiverse_document_render_duration",
	Help:    "Time to load and render an XML document",
	Buckets: prometheus.ExponentialBucketsRange(0.0001, 2, 20),
}, []string{"document"})

var discoveryResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "miiverse_discovery_resolutions",
	Help: "Discovery requests by environment and outcome",
}, []string{"environment", "outcome"})
