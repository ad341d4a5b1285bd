package score

// DefaultNamespace is used when a host does not pick one
const DefaultNamespace = "scores"

// Store keeps the best score reached per namespace
type Store interface {
	// Best returns the best score recorded under namespace, 0 if none
	Best(namespace string) (int, error)

	// Record stores score if it beats the best so far, returning whether it did
	Record(namespace string, score int) (bool, error)

	Close() error
}
