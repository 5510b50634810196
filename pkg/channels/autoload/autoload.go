// Package autoload registers every built-in channel factory via side-effect
// imports. Blank-import it from the program entry point.
package autoload

import (
	_ "hrdesk/pkg/channels/console"
	_ "hrdesk/pkg/channels/telegram"
	_ "hrdesk/pkg/channels/web"
)
