package handlers

const (
	// History paging
	defaultHistoryPageSize = 50
	maxHistoryPageSize     = 100 // Maximum page size for voicing history

	midiContentType = "audio/midi"
	midiFilename    = "progression.mid"
)
