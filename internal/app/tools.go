package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/config"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/extract"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/mcp"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/playlist"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

// RegisterTools enregistre les quatre outils MCP sur le serveur.
func (a *App) RegisterTools(s *mcp.Server) {
	s.Register(mcp.Tool{
		Name:        "youtube_extract_video",
		Description: "Extract comprehensive YouTube video data: metadata + transcription with auto language detection",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"url": map[string]any{
					"type":        "string",
					"description": "YouTube video URL (supports various formats)",
				},
				"language": map[string]any{
					"type":        "string",
					"description": "Preferred language for transcription (auto-detected if not specified)",
					"default":     "auto",
				},
				"include_timestamps": map[string]any{
					"type":        "boolean",
					"description": "Include timestamps in transcription output",
					"default":     true,
				},
				"format": map[string]any{
					"type":        "string",
					"description": "Output format: 'json' or 'text'",
					"enum":        []string{"json", "text"},
					"default":     "json",
				},
				"save_locally": map[string]any{
					"type":        "boolean",
					"description": "Save transcription to configured local directory",
					"default":     false,
				},
			},
			"required": []string{"url"},
		},
		Handler: a.handleExtractVideo,
	})

	s.Register(mcp.Tool{
		Name:        "configure_output_directory",
		Description: "Set the local directory where transcriptions will be saved (persists globally)",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"directory_path": map[string]any{
					"type":        "string",
					"description": "Absolute path to directory for saving transcriptions",
				},
			},
			"required": []string{"directory_path"},
		},
		Handler: a.handleConfigureOutputDirectory,
	})

	s.Register(mcp.Tool{
		Name:        "show_current_config",
		Description: "Display current global configuration and settings",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
			"required":   []string{},
		},
		Handler: a.handleShowConfig,
	})

	s.Register(mcp.Tool{
		Name:        "youtube_extract_playlist",
		Description: "Extract transcriptions from an entire YouTube playlist with intelligent organization",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"playlist_url": map[string]any{
					"type":        "string",
					"description": "YouTube playlist URL to extract transcriptions from",
				},
				"max_videos": map[string]any{
					"type":        "integer",
					"description": "Maximum number of videos to process from playlist",
					"default":     playlist.DefaultMaxVideos,
					"minimum":     1,
					"maximum":     playlist.HardMaxVideos,
				},
			},
			"required": []string{"playlist_url"},
		},
		Handler: a.handleExtractPlaylist,
	})
}

func (a *App) handleExtractVideo(ctx context.Context, args json.RawMessage) (string, error) {
	var params struct {
		URL               string `json:"url"`
		Language          string `json:"language"`
		IncludeTimestamps *bool  `json:"include_timestamps"`
		Format            string `json:"format"`
		SaveLocally       bool   `json:"save_locally"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return "", fmt.Errorf("arguments invalides: %w", err)
	}
	if params.URL == "" {
		return "", fmt.Errorf("URL is required")
	}

	format, err := model.ParseOutputFormat(params.Format)
	if err != nil {
		return "", err
	}

	// include_timestamps est vrai par défaut
	includeTimestamps := true
	if params.IncludeTimestamps != nil {
		includeTimestamps = *params.IncludeTimestamps
	}

	result, err := a.service.ExtractVideo(ctx, extract.Options{
		URL:               params.URL,
		Language:          params.Language,
		IncludeTimestamps: includeTimestamps,
		SaveLocally:       params.SaveLocally,
	})
	if err != nil {
		return "", fmt.Errorf("error extracting video %s: %w", params.URL, err)
	}

	if format == model.FormatText {
		return extract.FormatText(result), nil
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("sérialisation du résultat: %w", err)
	}
	return string(data), nil
}

func (a *App) handleConfigureOutputDirectory(ctx context.Context, args json.RawMessage) (string, error) {
	var params struct {
		DirectoryPath string `json:"directory_path"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return "", fmt.Errorf("arguments invalides: %w", err)
	}
	if params.DirectoryPath == "" {
		return "", fmt.Errorf("directory path is required")
	}

	if err := a.cfg.SetOutputDirectory(params.DirectoryPath); err != nil {
		return "", fmt.Errorf("error configuring directory: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Output directory configured successfully:\n📁 %s\n\n", a.cfg.OutputDirectory)
	b.WriteString("Transcriptions will be saved with this structure:\n")
	fmt.Fprintf(&b, "%s/{channel_name}/{title}_{YYYYMMDD}_{video_id}/\n", a.cfg.OutputDirectory)
	b.WriteString("├── transcript_plain.txt\n")
	b.WriteString("├── transcript_timestamps.txt\n")
	b.WriteString("└── metadata.json\n\n")
	b.WriteString("💾 Configuration saved globally - will persist across sessions")
	return b.String(), nil
}

func (a *App) handleShowConfig(ctx context.Context, args json.RawMessage) (string, error) {
	configPath := a.cfg.Path()
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	exists := "❌ No"
	if _, err := os.Stat(configPath); err == nil {
		exists = "✅ Yes"
	}

	envOr := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return "Not set"
	}

	lines := []string{
		"🔧 **YouTube Extract MCP - Current Configuration**",
		"",
		fmt.Sprintf("📁 **Output Directory**: %s", a.cfg.OutputDirectory),
		fmt.Sprintf("📄 **Config File**: %s", configPath),
		fmt.Sprintf("📂 **Config File Exists**: %s", exists),
		"",
		"🌍 **Environment Variables**:",
		fmt.Sprintf("  • %s: %s", config.EnvOutputDir, envOr(config.EnvOutputDir)),
		fmt.Sprintf("  • %s: %s", config.EnvConfigPath, envOr(config.EnvConfigPath)),
		"",
		"⚙️ **Current Settings**:",
		fmt.Sprintf("  • Log level: %s", a.cfg.LogLevel),
		fmt.Sprintf("  • yt-dlp binary: %s", a.cfg.YtDlp.Name),
		"",
		"📝 **File Naming Pattern**:",
		"  • Structure: {channel_name}/{title}_{YYYYMMDD}_{video_id}/",
		"  • Files: transcript_plain.txt, transcript_timestamps.txt, metadata.json",
		"",
		"🔄 **Next Steps**:",
		"  • Use `configure_output_directory` to set/change output directory",
		"  • Use `youtube_extract_video` with `save_locally=true` to save files",
		"  • Configuration persists globally across sessions",
	}
	return strings.Join(lines, "\n"), nil
}

func (a *App) handleExtractPlaylist(ctx context.Context, args json.RawMessage) (string, error) {
	var params struct {
		PlaylistURL string `json:"playlist_url"`
		MaxVideos   int    `json:"max_videos"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return "", fmt.Errorf("arguments invalides: %w", err)
	}
	if params.PlaylistURL == "" {
		return "", fmt.Errorf("playlist URL is required")
	}

	result, err := a.processor.Process(ctx, params.PlaylistURL, params.MaxVideos)
	if err != nil {
		return "", fmt.Errorf("error processing playlist: %w", err)
	}
	return result.Summary(), nil
}
