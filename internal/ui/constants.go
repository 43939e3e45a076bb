package ui

// Console strings live here so session logic stays free of literals.

// Icons (emojis/symbols)
const (
	IconApp      = "🎬"
	IconVideo    = "📹"
	IconChannel  = "👤"
	IconDuration = "⏱️"
	IconFolder   = "📁"
	IconViews    = "👀"
	IconDate     = "📅"
	IconNotes    = "📝"
	IconBusy     = "🔄"
	IconSuccess  = "✅"
	IconError    = "❌"
	IconWave     = "👋"
)

// Menu choices
const (
	ChoiceFullVideo = "1"
	ChoiceAudioOnly = "2"
	ChoicePlaylist  = "3"
	ChoiceInfoOnly  = "4"
	ChoiceQuit      = "5"
)

// Menu text
const (
	MenuHeader         = "\nOptions:"
	MenuOptionVideo    = "1. Download video"
	MenuOptionAudio    = "2. Download audio only"
	MenuOptionPlaylist = "3. Download playlist"
	MenuOptionInfo     = "4. Get video info"
	MenuOptionQuit     = "5. Exit"
)

// Prompts
const (
	PromptChoice      = "\nChoose an option (1-5): "
	PromptVideoURL    = "Video URL: "
	PromptPlaylistURL = "Playlist URL: "
)

// Result and status messages. Leading newlines match the console rhythm:
// probe header and final banners are set off from the transfer output.
const (
	MsgInvalidOption = IconError + " Invalid option!"
	MsgGoodbye       = IconWave + " Bye!"

	MsgProbeTitle    = "\n" + IconVideo + " Title: %s"
	MsgProbeChannel  = IconChannel + " Channel: %s"
	MsgProbeDuration = IconDuration + "  Duration: %s"
	MsgProbeSavingTo = IconFolder + " Saving to: %s"

	MsgDownloadStart  = "\n" + IconBusy + " Starting download..."
	MsgDownloadDone   = "\n" + IconSuccess + " Download completed successfully!"
	MsgDownloadFailed = "\n" + IconError + " Download error: %v"

	MsgPlaylistStart  = IconBusy + " Downloading playlist..."
	MsgPlaylistDone   = IconSuccess + " Playlist downloaded successfully!"
	MsgPlaylistFailed = IconError + " Playlist download error: %v"

	MsgInfoViews       = IconViews + " Views: %s"
	MsgInfoUploadDate  = IconDate + " Upload date: %s"
	MsgInfoDescription = IconNotes + " Description: %s"
	MsgInfoFailed      = "Failed to get video info: %v"
)
