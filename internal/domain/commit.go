package domain

// CommitAuthor is the author block of a commit.
type CommitAuthor struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// CommitDetail is the inner commit object of the GitHub commits API.
type CommitDetail struct {
	Author  CommitAuthor `json:"author"`
	Message string       `json:"message"`
}

// Commit is one entry of the GitHub commit-listing API, trimmed to the
// fields the console renders.
type Commit struct {
	SHA    string       `json:"sha"`
	Commit CommitDetail `json:"commit"`
}
