package cli

import (
	"strings"
	"testing"

	"github.com/carecompanion/companion-cli/internal/timeline"
)

func TestTimelineAddHelp_ListsEveryEntryType(t *testing.T) {
	cmd := newTimelineAddCommand(&RootOptions{})
	for _, et := range timeline.EntryTypes() {
		if !strings.Contains(cmd.Long, string(et)) {
			t.Fatalf("help text missing entry type %q:\n%s", et, cmd.Long)
		}
	}
}
