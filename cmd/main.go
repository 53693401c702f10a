package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Vovarama1992/voice_translator/internal/audio"
	"github.com/Vovarama1992/voice_translator/internal/config"
	"github.com/Vovarama1992/voice_translator/internal/conversation"
	"github.com/Vovarama1992/voice_translator/internal/hotkey"
	"github.com/Vovarama1992/voice_translator/internal/status"
	"github.com/Vovarama1992/voice_translator/internal/synthesize"
	"github.com/Vovarama1992/voice_translator/internal/transcribe"
	"github.com/Vovarama1992/voice_translator/internal/translate"
)

func main() {

	// =========================================================================
	// ENV / AUDIO INIT
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewDevelopment()
	defer baseLogger.Sync()
	logger := baseLogger.Sugar()

	if err := audio.Init(); err != nil {
		log.Fatalf("audio: %v", err)
	}
	defer audio.Terminate()

	// =========================================================================
	// CLIENTS (STT / TRANSLATE / TTS)
	// =========================================================================

	var recognizer transcribe.Recognizer
	switch cfg.STTProvider {
	case config.ProviderWhisper:
		recognizer = transcribe.NewWhisperClient(cfg.OpenAIAPIKey)
	default:
		recognizer = transcribe.NewElevenLabsClient(cfg.ElevenLabsAPIKey)
	}

	var backend translate.Translator
	switch cfg.Translator {
	case config.TranslatorOpenAI:
		backend = translate.NewOpenAIClient(cfg.OpenAIAPIKey)
	default:
		backend = translate.NewLibreClient(cfg.LibreTranslateURL)
	}
	translator := translate.NewService(backend)

	synthesizer := synthesize.NewElevenLabsClient(cfg.ElevenLabsAPIKey, cfg.VoiceID)

	recorder := audio.NewPortAudioRecorder(cfg.SampleRate)
	player := audio.NewPortAudioPlayer(cfg.SampleRate, cfg.OutputGain)

	// =========================================================================
	// STATUS ENDPOINT
	// =========================================================================

	feed := status.NewFeed()
	if cfg.StatusAddr != "" {
		go func() {
			if err := http.ListenAndServe(cfg.StatusAddr, status.NewRouter(feed)); err != nil {
				logger.Errorf("status endpoint: %v", err)
			}
		}()
		logger.Infof("status endpoint at http://%s/status", cfg.StatusAddr)
	}

	// =========================================================================
	// CONTROLLER
	// =========================================================================

	controller := conversation.NewController(conversation.Deps{
		Recorder:    recorder,
		Player:      player,
		Recognizer:  recognizer,
		Translator:  translator,
		Synthesizer: synthesizer,
		Log:         logger,
		Reporter:    feed,
		SampleRate:  cfg.SampleRate,
		ReplyRecord: cfg.ReplyRecord,
	})

	listener := hotkey.NewGlobalListener(cfg.PrimaryKey, cfg.ReplyKey, cfg.ExitKey)
	events := listener.Start()
	defer listener.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printBanner(cfg)

	if err := controller.Run(ctx, events); err != nil {
		logger.Errorf("controller: %v", err)
		os.Exit(1)
	}

	fmt.Println("👋 Goodbye!")
}

func printBanner(cfg config.Config) {
	fmt.Println("==================================================")
	fmt.Println("🎤 Two-way voice translator")
	fmt.Println("==================================================")
	fmt.Printf("  • Hold '%c' to record (release to translate to English)\n", cfg.PrimaryKey)
	fmt.Printf("  • Press '%c' to record a %s English reply\n", cfg.ReplyKey, cfg.ReplyRecord)
	fmt.Printf("  • Press '%c' or Ctrl+C to quit\n", cfg.ExitKey)
	fmt.Println()
}
