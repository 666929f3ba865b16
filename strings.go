package fasturi

var (
	strColonSlashSlash = []byte("://")
	strSlash           = []byte("/")
)
