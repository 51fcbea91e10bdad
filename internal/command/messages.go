package command

// Feedback texts.
const (
	MessageInvalidFormat = "Invalid command format!\n%s"
	MessageInvalidIndex  = "The %s index provided is invalid"
	MessageNotInRecord   = "This %s is not in the record"
	MessageNoFieldEdited = "At least one field to edit must be provided."

	MessageDuplicatePlayer = "This player already exists in the record"
	MessageDuplicateJersey = "Jersey number %s is already taken in team %s"
	MessageDuplicateTeam   = "This team already exists in the record"
	MessageDuplicateMatch  = "This match already exists in the record"
	MessageSameTeam        = "Home and away teams must be different"
	MessageMatchNeedsTeams = "Both teams of a match must be in the record"
	MessageRenameJersey    = "Renaming this team would give two of its players the same jersey number"
	MessageTeamHasMatches  = "This team still plays in recorded matches; delete those matches first"

	MessageAddPlayer     = "New player added: %s"
	MessageEditPlayer    = "Edited Player: %s"
	MessageDeletePlayer  = "Deleted Player: %s"
	MessageViewPlayer    = "Viewing Player: %s"
	MessageListPlayers   = "Listed all players"
	MessageFindPlayers   = "%d players listed!"
	MessageSortPlayers   = "Sorted all players by name"
	MessageTransfer      = "Transferred %s from %s to %s with jersey number %s"
	MessageAlreadyInTeam = "%s already plays for %s"

	MessageAddTeam    = "New team added: %s"
	MessageEditTeam   = "Edited Team: %s"
	MessageDeleteTeam = "Deleted Team: %s"
	MessageViewTeam   = "Viewing Team: %s"
	MessageListTeams  = "Listed all teams"
	MessageFindTeams  = "%d teams listed!"
	MessageSortTeams  = "Sorted all teams by standings"

	MessageAddMatch    = "New match added: %s"
	MessageEditMatch   = "Edited Match: %s"
	MessageDeleteMatch = "Deleted Match: %s"
	MessageListMatches = "Listed all matches"
	MessageFindMatches = "%d matches listed!"

	MessageListFinances = "Listed all finances"
	MessageClear        = "League record has been cleared!"
	MessageExit         = "Exiting league record as requested ..."
)
