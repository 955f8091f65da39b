package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bnema/vcalc/internal/application"
	"github.com/bnema/vcalc/internal/domain"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const maxRandomCount = 20

// Session is the part of application.Session exposed as tools.
type Session interface {
	Press(ctx context.Context, token domain.Token) (application.Output, error)
	PressAll(ctx context.Context, tokens []domain.Token) (application.Output, error)
	Settings() domain.Settings
	UpdateSettings(ctx context.Context, update application.SettingsUpdate) (domain.Settings, error)
}

type Server struct {
	session Session
	logger  *slog.Logger
	mcp     *server.MCPServer
}

func NewServer(session Session, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{
		session: session,
		logger:  logger,
		mcp: server.NewMCPServer(
			"vcalc",
			version,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
		),
	}
	s.addTools()

	return s
}

// Serve speaks MCP over the given streams until ctx ends or stdin closes.
func (s *Server) Serve(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	return stdio.Listen(ctx, stdin, stdout)
}

func (s *Server) addTools() {
	s.mcp.AddTool(mcplib.NewTool("press",
		mcplib.WithDescription("Press calculator keys in order and return the resulting display. Tokens are space separated: digits, '.', + - * /, sin cos tan log sqrt square, pi e, mc m+ m- mr, clear, equals (or '='), random."),
		mcplib.WithString("tokens",
			mcplib.Required(),
			mcplib.Description("Keys to press, e.g. '12.5 * 4 ='"),
		),
	), s.handlePress)

	s.mcp.AddTool(mcplib.NewTool("clear",
		mcplib.WithDescription("Clear the current input and pending operation. Memory is kept."),
	), s.handleClear)

	s.mcp.AddTool(mcplib.NewTool("format_number",
		mcplib.WithDescription("Format a number the way the calculator displays it: rounded and grouped with commas."),
		mcplib.WithString("value",
			mcplib.Required(),
			mcplib.Description("Number to format, e.g. '1234.56789'"),
		),
		mcplib.WithNumber("digits",
			mcplib.Description("Maximum fraction digits; defaults to the rounding setting"),
			mcplib.Min(0),
			mcplib.Max(domain.MaxRoundingDigits),
		),
	), s.handleFormatNumber)

	s.mcp.AddTool(mcplib.NewTool("random",
		mcplib.WithDescription("Run random calculations using the configured range and mode."),
		mcplib.WithNumber("count",
			mcplib.Description("How many calculations to run"),
			mcplib.DefaultNumber(1),
			mcplib.Min(1),
			mcplib.Max(maxRandomCount),
		),
	), s.handleRandom)

	s.mcp.AddTool(mcplib.NewTool("get_settings",
		mcplib.WithDescription("Return the calculator settings."),
	), s.handleGetSettings)

	s.mcp.AddTool(mcplib.NewTool("update_settings",
		mcplib.WithDescription("Change calculator settings. Only the given fields change; the result is saved."),
		mcplib.WithNumber("rounding_digits", mcplib.Description("Fraction digits shown, 0-15")),
		mcplib.WithNumber("random_min", mcplib.Description("Lower bound for random operands")),
		mcplib.WithNumber("random_max", mcplib.Description("Upper bound for random operands")),
		mcplib.WithBoolean("voice_enabled", mcplib.Description("Speak keys and results")),
		mcplib.WithString("mode",
			mcplib.Description("Calculator mode"),
			mcplib.Enum(string(domain.ModeSimple), string(domain.ModeScientific)),
		),
	), s.handleUpdateSettings)
}

func (s *Server) handlePress(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	args := request.GetArguments()

	raw, ok := args["tokens"].(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return mcplib.NewToolResultError("tokens is required"), nil
	}

	tokens, err := domain.ParseTokens(strings.Fields(raw))
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	out, err := s.session.PressAll(ctx, tokens)
	if err != nil {
		return mcplib.NewToolResultError(fmt.Sprintf("press: %v", err)), nil
	}

	return jsonResult(out)
}

func (s *Server) handleClear(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	out, err := s.session.Press(ctx, domain.TokenClear)
	if err != nil {
		return mcplib.NewToolResultError(fmt.Sprintf("clear: %v", err)), nil
	}

	return jsonResult(out)
}

func (s *Server) handleFormatNumber(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	args := request.GetArguments()

	value, ok := args["value"].(string)
	if !ok {
		return mcplib.NewToolResultError("value is required"), nil
	}

	digits := s.session.Settings().RoundingDigits
	if v, err := intArg(args, "digits"); err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	} else if v != nil {
		digits = *v
	}
	if digits < 0 || digits > domain.MaxRoundingDigits {
		return mcplib.NewToolResultError(fmt.Sprintf("digits must be between 0 and %d", domain.MaxRoundingDigits)), nil
	}

	return mcplib.NewToolResultText(domain.FormatDisplay(strings.TrimSpace(value), digits)), nil
}

func (s *Server) handleRandom(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	count := 1
	if v, err := intArg(request.GetArguments(), "count"); err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	} else if v != nil {
		count = *v
	}
	if count < 1 || count > maxRandomCount {
		return mcplib.NewToolResultError(fmt.Sprintf("count must be between 1 and %d", maxRandomCount)), nil
	}

	outputs := make([]application.Output, 0, count)
	for i := 0; i < count; i++ {
		out, err := s.session.Press(ctx, domain.TokenRandom)
		if err != nil {
			return mcplib.NewToolResultError(fmt.Sprintf("random: %v", err)), nil
		}
		outputs = append(outputs, out)
	}

	return jsonResult(outputs)
}

func (s *Server) handleGetSettings(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	return jsonResult(application.NewSettingsView(s.session.Settings()))
}

func (s *Server) handleUpdateSettings(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	args := request.GetArguments()

	var (
		update application.SettingsUpdate
		err    error
	)
	if update.RoundingDigits, err = intArg(args, "rounding_digits"); err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	if update.RandomMin, err = intArg(args, "random_min"); err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	if update.RandomMax, err = intArg(args, "random_max"); err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	if raw, ok := args["voice_enabled"]; ok {
		voice, ok := raw.(bool)
		if !ok {
			return mcplib.NewToolResultError("voice_enabled must be a boolean"), nil
		}
		update.VoiceEnabled = &voice
	}
	if raw, ok := args["mode"]; ok {
		text, _ := raw.(string)
		mode, err := domain.ParseMode(text)
		if err != nil {
			return mcplib.NewToolResultError(err.Error()), nil
		}
		update.Mode = &mode
	}
	if update.Empty() {
		return mcplib.NewToolResultError("no settings given"), nil
	}

	settings, err := s.session.UpdateSettings(ctx, update)
	if err != nil {
		return mcplib.NewToolResultError(fmt.Sprintf("update settings: %v", err)), nil
	}
	s.logger.InfoContext(ctx, "settings updated over mcp")

	return jsonResult(application.NewSettingsView(settings))
}

// intArg reads an optional whole number; JSON numbers arrive as float64.
func intArg(args map[string]any, name string) (*int, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return nil, nil
	}

	number, ok := raw.(float64)
	if !ok || number != float64(int(number)) {
		return nil, fmt.Errorf("%s must be a whole number", name)
	}

	v := int(number)
	return &v, nil
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}

	return mcplib.NewToolResultText(string(data)), nil
}
