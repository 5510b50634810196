// Package autoload registers every built-in classifier provider factory.
// Import it for its side effects only.
package autoload

import (
	_ "hrdesk/pkg/intent/gemini"
	_ "hrdesk/pkg/intent/ollama"
	_ "hrdesk/pkg/intent/openaiic"
)
