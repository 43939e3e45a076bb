package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ytgrab/ytgrab/internal/download"
	"github.com/ytgrab/ytgrab/internal/model"
)

// State is the position of a session in its menu cycle
type State string

const (
	// StateMenu means the option menu is about to be printed
	StateMenu State = "Menu"

	// StateAwaitingInput means the session is blocked on the choice prompt
	StateAwaitingInput State = "AwaitingInput"

	// StateProcessing means a staged request is being executed
	StateProcessing State = "Processing"

	// StateTerminated means the session is over; it never leaves this state
	StateTerminated State = "Terminated"
)

// Session drives the interactive menu loop over an injected reader and
// writer. One request is processed at a time; every cycle ends back at the
// menu until the user exits or input runs out.
type Session struct {
	scanner     *bufio.Scanner
	out         io.Writer
	svc         download.Downloader
	downloadDir string
	state       State
	pending     model.DownloadRequest
}

// NewSession creates a session bound to the given streams and service
func NewSession(in io.Reader, out io.Writer, svc download.Downloader, downloadDir string) *Session {
	s := &Session{
		scanner:     bufio.NewScanner(in),
		out:         out,
		svc:         svc,
		downloadDir: downloadDir,
		state:       StateMenu,
	}

	svc.SetProbeCallback(s.printProbe)

	return s
}

// Run executes menu cycles until the session terminates. End of input is a
// normal exit, same as the exit option.
func (s *Session) Run(ctx context.Context) {
	s.state = StateMenu

	for s.state != StateTerminated {
		s.step(ctx)
	}
}

// step advances the session by one state transition
func (s *Session) step(ctx context.Context) {
	switch s.state {
	case StateMenu:
		s.printMenu()
		s.state = StateAwaitingInput

	case StateAwaitingInput:
		s.handleSelection()

	case StateProcessing:
		s.process(ctx)
		s.state = StateMenu

	default:
		s.state = StateTerminated
	}
}

// printMenu prints the fixed option list and the choice prompt
func (s *Session) printMenu() {
	fmt.Fprintln(s.out, MenuHeader)
	fmt.Fprintln(s.out, MenuOptionVideo)
	fmt.Fprintln(s.out, MenuOptionAudio)
	fmt.Fprintln(s.out, MenuOptionPlaylist)
	fmt.Fprintln(s.out, MenuOptionInfo)
	fmt.Fprintln(s.out, MenuOptionQuit)
	fmt.Fprint(s.out, PromptChoice)
}

// handleSelection reads the menu choice and stages the matching request
func (s *Session) handleSelection() {
	choice, ok := s.readLine()
	if !ok {
		s.state = StateTerminated
		return
	}

	switch choice {
	case ChoiceFullVideo:
		s.stageRequest(model.ModeFullVideo, PromptVideoURL)
	case ChoiceAudioOnly:
		s.stageRequest(model.ModeAudioOnly, PromptVideoURL)
	case ChoicePlaylist:
		s.stageRequest(model.ModePlaylist, PromptPlaylistURL)
	case ChoiceInfoOnly:
		s.stageRequest(model.ModeInfoOnly, PromptVideoURL)
	case ChoiceQuit:
		fmt.Fprintln(s.out, MsgGoodbye)
		s.state = StateTerminated
	default:
		fmt.Fprintln(s.out, MsgInvalidOption)
		s.state = StateMenu
	}
}

// stageRequest prompts for a URL and stages the request for processing. An
// empty URL silently returns to the menu.
func (s *Session) stageRequest(mode model.Mode, prompt string) {
	fmt.Fprint(s.out, prompt)

	url, ok := s.readLine()
	if !ok {
		s.state = StateTerminated
		return
	}

	if url == "" {
		s.state = StateMenu
		return
	}

	s.pending = model.NewRequest(mode, url)
	s.state = StateProcessing
}

// process executes the staged request and prints its result summary
func (s *Session) process(ctx context.Context) {
	req := s.pending
	s.pending = model.DownloadRequest{}

	if req.Mode == model.ModeInfoOnly {
		s.showInfo(ctx, req.URL)
		return
	}

	s.runDownload(ctx, req)
}

// runDownload drives one download request and prints the outcome banner.
// Failures end the cycle, not the session.
func (s *Session) runDownload(ctx context.Context, req model.DownloadRequest) {
	if req.Mode == model.ModePlaylist {
		fmt.Fprintln(s.out, MsgPlaylistStart)
		if err := s.svc.Download(ctx, req); err != nil {
			fmt.Fprintf(s.out, MsgPlaylistFailed+"\n", err)
			return
		}
		fmt.Fprintln(s.out, MsgPlaylistDone)
		return
	}

	// The probe header is printed by the probe callback before the transfer
	if err := s.svc.Download(ctx, req); err != nil {
		fmt.Fprintf(s.out, MsgDownloadFailed+"\n", err)
		return
	}

	fmt.Fprintln(s.out, MsgDownloadDone)
}

// showInfo fetches and renders the metadata summary for one video
func (s *Session) showInfo(ctx context.Context, url string) {
	info, err := s.svc.VideoInfo(ctx, url)
	if err != nil {
		fmt.Fprintf(s.out, MsgInfoFailed+"\n", err)
		return
	}

	fmt.Fprintf(s.out, MsgProbeTitle+"\n", info.Title)
	fmt.Fprintf(s.out, MsgProbeChannel+"\n", info.Uploader)
	fmt.Fprintf(s.out, MsgProbeDuration+"\n", info.GetDurationString())
	fmt.Fprintf(s.out, MsgInfoViews+"\n", info.GetViewCountString())
	fmt.Fprintf(s.out, MsgInfoUploadDate+"\n", info.UploadDate)
	fmt.Fprintf(s.out, MsgInfoDescription+"\n", info.Description)
}

// printProbe renders the pre-download header with the probed metadata
func (s *Session) printProbe(meta *model.VideoMetadata) {
	fmt.Fprintf(s.out, MsgProbeTitle+"\n", meta.Title)
	fmt.Fprintf(s.out, MsgProbeChannel+"\n", meta.Uploader)
	fmt.Fprintf(s.out, MsgProbeDuration+"\n", meta.GetDurationString())
	fmt.Fprintf(s.out, MsgProbeSavingTo+"\n", s.downloadDir)
	fmt.Fprintln(s.out, MsgDownloadStart)
}

// readLine reads the next input line with surrounding whitespace trimmed.
// The second return is false once input is exhausted.
func (s *Session) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}
