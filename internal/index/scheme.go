package index

var (
	bTags    = []byte("tags")    // label -> tag record (JSON)
	bOutputs = []byte("outputs") // generated filename -> label
)
