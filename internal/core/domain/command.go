package domain

// Command is a fully resolved build tool invocation.
type Command struct {
	Name string
	Args []string
	// Env is appended to the inherited process environment.
	Env []string
	Dir string
}

// Overwrite is the outcome of an atomic overwrite.
type Overwrite struct {
	// Changed is false when the content hash matched and nothing was written.
	Changed bool
	// Hash is the hash of the content now at the path.
	Hash string
}
