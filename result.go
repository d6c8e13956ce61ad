package exprql

// QueryResult contains rendered query text and the parameters it requires.
type QueryResult struct {
	Text           string
	RequiredParams []string
}
