package server

import (
	"flag"

	log "github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
)

// openBrowser launches the default browser at url. Best-effort: the server
// keeps serving either way and the user can always navigate manually.
func openBrowser(url string) {
	// Don't open a browser when running under go test.
	if flag.Lookup("test.v") != nil {
		return
	}
	if err := open.Start(url); err != nil {
		log.Warnf("Could not open browser: %v. Navigate to %s manually.", err, url)
	}
}
