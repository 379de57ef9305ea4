// Package web embeds the HTML templates served by the router.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
