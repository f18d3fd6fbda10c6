package engines

import (
	"strings"
)

// commonTemplateFuncs are functions available in all templates.
// lower is handy for artifacts with restricted alphabets, container
// image names for example.
var commonTemplateFuncs = map[string]interface{}{
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
}
