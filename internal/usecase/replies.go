package usecase

// Reply texts, in the order a successful conversation sees them. The exact
// wording is a product detail; the sequence is the contract.
const (
	replyWelcome = "Hi! I can tell you a little about your natal chart. " +
		"Please send me your birth date in DD.MM.YYYY format (for example, 01.01.2000):"

	replyAskCity = "Great! Now, please send me the city you were born in:"

	replyGenerating = "Thank you! Generating your natal chart reading. This can take a little while..."

	replyGenerationFailed = "Sorry, something went wrong while preparing your reading. Please try again later."

	replyCancelled = "Conversation cancelled. Send /start whenever you want to begin again."

	replyUnknownCommand = "Sorry, I did not understand that command. Try /start to begin."

	replyNoSession = "Send /start to begin a new reading."
)
