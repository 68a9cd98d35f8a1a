package pressfront

import "embed"

// EmbeddedAssets contains files shipped with the binary:
// map.yaml (default map points) and style.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
