package server

import _ "embed"

//go:embed webui/index.html
var indexHTML []byte
