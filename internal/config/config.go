package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderElevenLabs = "elevenlabs"
	ProviderWhisper    = "whisper"

	TranslatorLibre  = "libre"
	TranslatorOpenAI = "openai"
)

// Config собирает все настройки процесса из окружения.
type Config struct {
	ElevenLabsAPIKey string
	OpenAIAPIKey     string

	VoiceID     string
	STTProvider string
	Translator  string

	LibreTranslateURL string

	SampleRate   int
	ReplyRecord  time.Duration
	OutputGain   float64

	StatusAddr string

	PrimaryKey rune
	ReplyKey   rune
	ExitKey    rune
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ElevenLabsAPIKey:  os.Getenv("ELEVENLABS_API_KEY"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		VoiceID:           getEnv("VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),
		STTProvider:       getEnv("STT_PROVIDER", ProviderElevenLabs),
		Translator:        getEnv("TRANSLATOR", TranslatorLibre),
		LibreTranslateURL: getEnv("LIBRETRANSLATE_URL", "https://libretranslate.de"),
		SampleRate:        getEnvInt("SAMPLE_RATE", 16000),
		ReplyRecord:       time.Duration(getEnvInt("BACK_RECORD_SECONDS", 5)) * time.Second,
		OutputGain:        getEnvFloat("OUTPUT_GAIN", 1.0),
		StatusAddr:        getEnv("STATUS_ADDR", "127.0.0.1:8390"),
		PrimaryKey:        getEnvKey("PRIMARY_KEY", 'v'),
		ReplyKey:          getEnvKey("REPLY_KEY", 'o'),
		ExitKey:           getEnvKey("EXIT_KEY", 'q'),
	}

	if cfg.ElevenLabsAPIKey == "" {
		return Config{}, fmt.Errorf("ELEVENLABS_API_KEY is not set")
	}

	switch cfg.STTProvider {
	case ProviderElevenLabs:
	case ProviderWhisper:
		if cfg.OpenAIAPIKey == "" {
			return Config{}, fmt.Errorf("STT_PROVIDER=whisper requires OPENAI_API_KEY")
		}
	default:
		return Config{}, fmt.Errorf("unknown STT_PROVIDER %q", cfg.STTProvider)
	}

	switch cfg.Translator {
	case TranslatorLibre:
	case TranslatorOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return Config{}, fmt.Errorf("TRANSLATOR=openai requires OPENAI_API_KEY")
		}
	default:
		return Config{}, fmt.Errorf("unknown TRANSLATOR %q", cfg.Translator)
	}

	if cfg.SampleRate <= 0 {
		return Config{}, fmt.Errorf("SAMPLE_RATE must be positive, got %d", cfg.SampleRate)
	}
	if cfg.ReplyRecord <= 0 {
		return Config{}, fmt.Errorf("BACK_RECORD_SECONDS must be positive")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getEnvKey(key string, def rune) rune {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return []rune(v)[0]
}
