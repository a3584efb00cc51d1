package wizard

import "github.com/druarnfield/dossier/internal/form"

// removeEntryMsg fires once the removal delay of an entry has elapsed. The
// entry is named by ID because its position may change while it retires.
type removeEntryMsg struct {
	Category form.Category
	ID       form.EntryID
}
