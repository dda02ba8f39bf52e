package handlers

// Embed colors
const (
	ColorClan         = 0x6495ED
	ColorSuccess      = 0x00FF00
	ColorWelcome      = 0x25D366
	ColorAnnouncement = 0xFF9900
)

// User-facing messages
const (
	MsgAlreadyVerified = "You are already verified!"
	MsgInvalidNickname = "Invalid nickname! Please use the WFxYourNick format (e.g. WFxPlayer123)."
	MsgVerifyFailed    = "Something went wrong during verification. Please try again or contact an admin."
	MsgNotRegistered   = "You are not registered in the clan system. Please complete verification first."
	MsgNoMembers       = "No members registered yet."
	MsgNoLoadouts      = "No loadouts registered yet."
	MsgGenericError    = "An error occurred. Please try again later."
	MsgAnnounceDenied  = "You need the Manage Server permission to post announcements."
)
