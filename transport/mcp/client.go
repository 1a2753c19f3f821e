package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/boggle/game/engine"
	"github.com/wricardo/mcp-training/boggle/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

var serverInstructions = heredoc.Doc(`
	Boggle - MCP Interface

	This is a thin client that proxies all requests to the REST API server.

	GAME OBJECTIVE:
	Find words on a square board of letter tiles. Each word must be traced
	through tiles that touch horizontally, vertically or diagonally, using
	each tile at most once. When you are done, the computer claims every
	word you missed.

	AVAILABLE TOOLS:
	- create_session: Create a new game session
	- list_sessions: List all active sessions
	- get_session: Get session details
	- game_state: Show the board, scores and found words
	- submit_word: Claim a word - requires intent explanation
	- submit_words: Claim several words at once
	- trace_word: Check whether a word can be traced, without claiming it
	- computer_turn: End your turn and let the computer finish the board
	- reset_game: Start a new round on a fresh board
	- word_history: View past submissions and their verdicts
	- list_configs: List available configurations
	- describe_cell: Show a tile and its neighbours
	- game_instructions: Get the full rules

	NOTE: The 'intent' parameter on submit_word serves as rubber duck debugging - explain your reasoning!
`)

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Boggle",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(serverInstructions),
	)

	c.registerTools()
}

func sessionOnlySchema() mcp.ToolInputSchema {
	return mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"session_id": map[string]interface{}{
				"type":        "string",
				"description": "Session ID",
			},
		},
		Required: []string{"session_id"},
	}
}

func emptySchema() mcp.ToolInputSchema {
	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: map[string]interface{}{},
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the config to use, as shown by list_configs (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: emptySchema(),
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: sessionOnlySchema(),
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board, scores and found words",
		InputSchema: sessionOnlySchema(),
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "submit_word",
		Description: "Submit a word found on the board. Rejected words are reported with a reason and do not cost anything.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"word": map[string]interface{}{
					"type":        "string",
					"description": "The word to claim (case-insensitive, at least 4 letters)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of where you see this word on the board (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "word"},
		},
	}, c.handleSubmitWord)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "submit_words",
		Description: "Submit several words in sequence and report each verdict",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"words": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Words to claim",
				},
			},
			Required: []string{"session_id", "words"},
		},
	}, c.handleSubmitWords)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "trace_word",
		Description: "Find a path for a word on the board without claiming it or checking the dictionary",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"word": map[string]interface{}{
					"type":        "string",
					"description": "The word to trace",
				},
			},
			Required: []string{"session_id", "word"},
		},
	}, c.handleTraceWord)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "computer_turn",
		Description: "End the human turn. The computer claims every remaining word on the board and the round is scored.",
		InputSchema: sessionOnlySchema(),
	}, c.handleComputerTurn)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Start a new round on a fresh board",
		InputSchema: sessionOnlySchema(),
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "word_history",
		Description: "Get the submission history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleWordHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: emptySchema(),
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the complete rules of the game",
		InputSchema: emptySchema(),
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Get the letter on a tile and every tile adjacent to it. Useful for checking a path by hand.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the tile (0-based, top to bottom)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the tile (0-based, left to right)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleDescribeCell)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		return map[string]interface{}{}
	}
	return args
}

func sessionPath(sessionID, suffix string) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + suffix
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	configID, _ := args["config_id"].(string)
	if configID == "" {
		// Older clients used config_name
		configID, _ = args["config_name"].(string)
	}

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s", session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		human, computer := 0, 0
		if s.GameState != nil {
			human, computer = s.GameState.HumanScore, s.GameState.ComputerScore
		}
		fmt.Fprintf(&b, "- %s (Config: %s, Score: %d-%d, Created: %s)\n",
			s.ID, s.ConfigName, human, computer, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, ""), nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/state"), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handleSubmitWord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	word, _ := args["word"].(string)

	// intent is only for the caller's benefit
	_, _ = args["intent"].(string)

	var result service.WordResult
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/words"), map[string]string{"word": word}, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatWordResult(&result)), nil
}

func (c *Client) handleSubmitWords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	wordsRaw, _ := args["words"].([]interface{})

	var b strings.Builder
	var last *engine.GameState
	accepted := 0
	for i, raw := range wordsRaw {
		word, ok := raw.(string)
		if !ok {
			continue
		}

		var result service.WordResult
		if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/words"), map[string]string{"word": word}, &result); err != nil {
			fmt.Fprintf(&b, "%d. %s: error: %v\n", i+1, word, err)
			continue
		}
		if result.Accepted {
			accepted++
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, formatAttemptLine(result.Attempt))
		last = result.GameState
	}

	header := fmt.Sprintf("Submitted %d words, %d accepted\n\n", len(wordsRaw), accepted)
	if last != nil {
		fmt.Fprintf(&b, "\nScore: you %d, computer %d\n", last.HumanScore, last.ComputerScore)
	}
	return mcp.NewToolResultText(header + b.String()), nil
}

func (c *Client) handleTraceWord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	word, _ := args["word"].(string)

	var trace service.TraceResult
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/trace"), map[string]string{"word": word}, &trace); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !trace.Found {
		return mcp.NewToolResultText(fmt.Sprintf("%s cannot be traced on this board", strings.ToUpper(trace.Word))), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s can be traced: %s\n(tracing does not claim the word)",
		strings.ToUpper(trace.Word), formatPath(trace.Path))), nil
}

func (c *Client) handleComputerTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var result service.ComputerTurnResult
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/computer-turn"), nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatComputerTurn(&result)), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/reset"), nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleWordHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)

	params := url.Values{}
	if page, ok := args["page"].(float64); ok {
		params.Set("page", fmt.Sprintf("%d", int(page)))
	}
	if limit, ok := args["limit"].(float64); ok {
		params.Set("limit", fmt.Sprintf("%d", int(limit)))
	}
	path := sessionPath(sessionID, "/history")
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var history service.HistoryResponse
	if err := c.apiCall(ctx, "GET", path, nil, &history); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Configurations:\n\n")
	for _, config := range configs {
		board := "random board"
		if config.FixedBoard {
			board = "fixed board"
		}
		fmt.Fprintf(&b, "• %s (config_id: %s)\n  %s\n  Board: %dx%d, %s\n\n",
			config.Name, config.ConfigID, config.Description, config.BoardSize, config.BoardSize, board)
	}

	return mcp.NewToolResultText(b.String()), nil
}

var gameInstructions = heredoc.Doc(`
	Boggle - Complete Instructions

	GAME OBJECTIVE:
	Find more points worth of words than the computer. You go first; when you
	call computer_turn the computer claims every valid word you did not find.

	THE BOARD:
	• A square grid of letter tiles, 4x4 (standard) or 5x5 (big)
	• Rows are numbered top to bottom and columns left to right, from 0
	• The "Q" tile is a single letter; spell QUIZ as Q-U-I-Z over four tiles

	TRACING A WORD:
	• Start on any tile containing the first letter
	• Each next letter must be on a tile touching the previous one
	  horizontally, vertically or diagonally
	• A tile may be used at most once per word
	• The same word can be claimed only once per round, by either player

	ACCEPTANCE RULES:
	A submitted word is checked in this order:
	1. too_short - fewer than 4 letters
	2. already_found - claimed earlier this round
	3. not_a_word - not in the dictionary
	4. not_on_board - cannot be traced
	Rejected words never cost points.

	SCORING:
	• 4 letters: 1 point
	• 5 letters: 2 points
	• 6 letters: 3 points
	• each further letter adds 1 point

	STRATEGY TIPS:
	- Use describe_cell to list a tile's neighbours before committing to a path
	- Use trace_word to check a path; it never claims the word
	- Look for common suffixes (-ED, -ER, -ING, -S) next to words you already have
	- Long words are worth far more than several short ones

	ROUND FLOW:
	1. create_session (or reset_game for a new board)
	2. submit_word / submit_words as often as you like
	3. computer_turn to finish the round and see who won

	SESSION MANAGEMENT:
	- Multiple game sessions can run simultaneously
	- Each session has a unique 4-character ID
	- Attempt history is kept across rounds of the same session

	Good luck and happy hunting!
`)

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(gameInstructions), nil
}

func (c *Client) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	row, rowOK := args["row"].(float64)
	col, colOK := args["col"].(float64)
	if !rowOK || !colOK {
		return mcp.NewToolResultError("row and col are required integers"), nil
	}
	if row < 0 || col < 0 {
		return mcp.NewToolResultError(fmt.Sprintf("Coordinates (%d, %d) are out of bounds", int(row), int(col))), nil
	}

	var view engine.CellView
	path := sessionPath(sessionID, fmt.Sprintf("/cells/%d/%d", int(row), int(col)))
	if err := c.apiCall(ctx, "GET", path, nil, &view); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCellView(&view)), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Round %d | You: %d | Computer: %d | Attempts: %d\n\n",
		state.Round, state.HumanScore, state.ComputerScore, state.TotalAttempts)

	b.WriteString("    ")
	for col := 0; col < state.Cols; col++ {
		fmt.Fprintf(&b, "%-3d", col)
	}
	b.WriteString("\n")
	for r, row := range state.Grid {
		fmt.Fprintf(&b, "%2d  ", r)
		for _, ch := range row {
			fmt.Fprintf(&b, "%-3c", ch)
		}
		b.WriteString("\n")
	}

	if len(state.HumanWords) > 0 {
		b.WriteString("\nYour words: ")
		b.WriteString(joinWords(state.HumanWords))
		b.WriteString("\n")
	}
	if len(state.ComputerWords) > 0 {
		b.WriteString("Computer words: ")
		b.WriteString(joinWords(state.ComputerWords))
		b.WriteString("\n")
	}

	if state.Phase == engine.PhaseOver {
		b.WriteString("\n🏁 ROUND OVER")
	}

	if state.Message != "" {
		fmt.Fprintf(&b, "\nMessage: %s", state.Message)
	}

	return b.String()
}

func joinWords(words []engine.FoundWord) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("%s (%d)", w.Word, w.Score)
	}
	return strings.Join(parts, ", ")
}

func formatPath(path engine.Path) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " → ")
}

func formatAttemptLine(attempt *engine.WordAttempt) string {
	if attempt == nil {
		return "(no attempt)"
	}
	if attempt.Accepted() {
		return fmt.Sprintf("✓ %s +%d", attempt.Word, attempt.Score)
	}
	return fmt.Sprintf("✗ %s (%s)", attempt.Word, attempt.Verdict.Describe())
}

func formatWordResult(result *service.WordResult) string {
	var b strings.Builder

	if result.Accepted {
		b.WriteString("✓ Word accepted\n")
		fmt.Fprintf(&b, "Word: %s | Points: %d\n", result.Attempt.Word, result.Attempt.Score)
		fmt.Fprintf(&b, "Path: %s\n", formatPath(result.Attempt.Path))
	} else {
		b.WriteString("✗ Word rejected\n")
		if result.Attempt != nil {
			fmt.Fprintf(&b, "Word: %s | Reason: %s\n", result.Attempt.Word, result.Attempt.Verdict)
		}
	}

	if result.GameState != nil {
		fmt.Fprintf(&b, "Score: you %d, computer %d\n", result.GameState.HumanScore, result.GameState.ComputerScore)
	}
	if result.Message != "" {
		fmt.Fprintf(&b, "\n%s", result.Message)
	}
	return b.String()
}

func formatComputerTurn(result *service.ComputerTurnResult) string {
	var b strings.Builder

	if result.AlreadyOver {
		b.WriteString("The round is already over. Use reset_game to start a new one.\n\n")
	} else {
		fmt.Fprintf(&b, "Computer found %d words for %d points\n", result.WordCount, result.Points)
		for _, fw := range engine.SortByScore(result.Words) {
			fmt.Fprintf(&b, "  %s (%d)\n", fw.Word, fw.Score)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Final score: you %d, computer %d\n", result.HumanScore, result.ComputerScore)
	switch result.Winner {
	case engine.Human:
		b.WriteString("🎉 YOU WIN!")
	case engine.Computer:
		b.WriteString("🤖 COMPUTER WINS")
	default:
		b.WriteString("🤝 TIE")
	}
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Word History (Page %d/%d), Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalAttempts)

	for _, attempt := range history.Attempts {
		fmt.Fprintf(&b, "%d. %s\n", attempt.AttemptNumber, formatAttemptLine(&attempt))
	}

	if len(history.Attempts) == 0 {
		b.WriteString("(no submissions yet)\n")
	}
	return b.String()
}

func formatCellView(view *engine.CellView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cell at %s:\n", view.Cell)
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "Letter: %s\n", displayLetter(view.Letter))
	fmt.Fprintf(&b, "Neighbors (%d):\n", len(view.Neighbors))
	for _, n := range view.Neighbors {
		fmt.Fprintf(&b, "  %s %s\n", n.Cell, displayLetter(n.Letter))
	}
	return b.String()
}

func displayLetter(letter string) string {
	if letter == "Q" {
		return "Q (counts as a single letter)"
	}
	return letter
}
