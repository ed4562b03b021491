package domain

// Reading captures one completed conversation: the two collected inputs and
// the text the generation backend produced for them. Rows are append-only;
// id and created_at are assigned by the store at write time.
type Reading struct {
	UserID        int64
	BirthDate     string
	BirthCity     string
	GeneratedText string
}
