package conversation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vovarama1992/voice_translator/internal/audio"
	"github.com/Vovarama1992/voice_translator/internal/hotkey"
	"github.com/Vovarama1992/voice_translator/internal/status"
	"github.com/Vovarama1992/voice_translator/internal/synthesize"
	"github.com/Vovarama1992/voice_translator/internal/transcribe"
	"github.com/Vovarama1992/voice_translator/internal/translate"
)

var ErrNoDetectedLanguage = errors.New("no source language detected yet, record the first speaker before replying")

// Reporter receives session snapshots for the debug endpoint.
type Reporter interface {
	Set(status.Snapshot)
}

type resultKind int

const (
	resultPrimaryDone resultKind = iota
	resultReplyRecorded
	resultReplyDone
)

type pipelineResult struct {
	kind resultKind
	utt  *Utterance
	err  error
}

// Deps собирает адаптеры контроллера.
type Deps struct {
	Recorder    audio.Recorder
	Player      audio.Player
	Recognizer  transcribe.Recognizer
	Translator  translate.Translator
	Synthesizer synthesize.Synthesizer

	Log      *zap.SugaredLogger
	Reporter Reporter

	SampleRate  int
	ReplyRecord time.Duration
}

// Controller owns the session and drives both flows from hotkey edges.
// All session mutations happen on the Run goroutine; pipelines run in a
// worker goroutine and post their outcome back through the results channel.
type Controller struct {
	recorder    audio.Recorder
	player      audio.Player
	recognizer  transcribe.Recognizer
	translator  translate.Translator
	synthesizer synthesize.Synthesizer

	log      *zap.SugaredLogger
	reporter Reporter

	sampleRate  int
	replyRecord time.Duration

	mu      sync.RWMutex
	session Session

	lastTranscript  string
	lastTranslation string

	results chan pipelineResult
}

func NewController(d Deps) *Controller {
	if d.Log == nil {
		d.Log = zap.NewNop().Sugar()
	}
	if d.SampleRate <= 0 {
		d.SampleRate = 16000
	}
	if d.ReplyRecord <= 0 {
		d.ReplyRecord = 5 * time.Second
	}
	return &Controller{
		recorder:    d.Recorder,
		player:      d.Player,
		recognizer:  d.Recognizer,
		translator:  d.Translator,
		synthesizer: d.Synthesizer,
		log:         d.Log,
		reporter:    d.Reporter,
		sampleRate:  d.SampleRate,
		replyRecord: d.ReplyRecord,
		results:     make(chan pipelineResult, 4),
	}
}

// Session returns a copy of the current session state.
func (c *Controller) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// Run consumes hotkey edges until the exit key, channel close, or context
// cancellation. The exit key is handled here in the loop so it preempts any
// in-flight pipeline.
func (c *Controller) Run(ctx context.Context, events <-chan hotkey.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Key == hotkey.KeyExit && ev.Kind == hotkey.Press {
				c.log.Infof("[session] exit key pressed, shutting down")
				return nil
			}
			c.handleKey(ctx, ev)
		case res := <-c.results:
			c.handleResult(res)
		}
	}
}

func (c *Controller) handleKey(ctx context.Context, ev hotkey.Event) {
	switch {
	case ev.Key == hotkey.KeyPrimary && ev.Kind == hotkey.Press:
		c.onPrimaryPress()
	case ev.Key == hotkey.KeyPrimary && ev.Kind == hotkey.Release:
		c.onPrimaryRelease(ctx)
	case ev.Key == hotkey.KeyReply && ev.Kind == hotkey.Press:
		c.onReplyPress(ctx)
	}
}

func (c *Controller) onPrimaryPress() {
	phase := c.Session().Phase
	if phase != PhaseIdle && phase != PhaseReadyForReply {
		c.log.Debugf("[primary] press ignored in phase %s", phase)
		return
	}
	if err := c.recorder.Start(); err != nil {
		c.log.Errorf("[primary] capture start failed: %v", err)
		return
	}
	c.setPhase(PhaseRecordingPrimary)
	c.log.Infof("[primary] 🎤 recording, release to stop")
}

func (c *Controller) onPrimaryRelease(ctx context.Context) {
	if c.Session().Phase != PhaseRecordingPrimary {
		return
	}
	samples, err := c.recorder.Stop()
	if err != nil {
		c.log.Errorf("[primary] capture failed: %v", err)
		c.setPhase(PhaseIdle)
		return
	}
	c.setPhase(PhaseProcessingPrimary)
	c.log.Infof("[primary] processing %d samples", len(samples))
	go c.runPrimary(ctx, samples)
}

func (c *Controller) onReplyPress(ctx context.Context) {
	s := c.Session()
	switch s.Phase {
	case PhaseRecordingPrimary, PhaseProcessingPrimary, PhaseRecordingReply, PhaseProcessingReply:
		c.log.Debugf("[reply] press ignored in phase %s", s.Phase)
		return
	}
	if s.DetectedLanguage == "" {
		c.log.Errorf("[reply] rejected: %v", ErrNoDetectedLanguage)
		return
	}
	c.setPhase(PhaseRecordingReply)
	c.log.Infof("[reply] 🎤 recording English reply for %s", c.replyRecord)
	go c.runReply(ctx, s.DetectedLanguage)
}

func (c *Controller) handleResult(res pipelineResult) {
	switch res.kind {
	case resultPrimaryDone:
		if res.err != nil {
			c.log.Errorf("[primary] pipeline failed: %v", res.err)
			c.setPhase(PhaseIdle)
			return
		}
		c.mu.Lock()
		c.session.DetectedLanguage = res.utt.Language
		c.mu.Unlock()
		c.lastTranscript = res.utt.Transcript
		c.lastTranslation = res.utt.Translation
		c.setPhase(PhaseReadyForReply)
		c.playAsync(res.utt.Synth)
		c.log.Infof("[primary] ✅ done, press the reply key to answer in English")

	case resultReplyRecorded:
		if res.err != nil {
			c.log.Errorf("[reply] capture failed: %v", res.err)
			c.setPhase(PhaseReadyForReply)
			return
		}
		c.setPhase(PhaseProcessingReply)

	case resultReplyDone:
		if res.err != nil {
			c.log.Errorf("[reply] pipeline failed: %v", res.err)
			c.setPhase(PhaseReadyForReply)
			return
		}
		c.lastTranscript = res.utt.Transcript
		c.lastTranslation = res.utt.Translation
		c.setPhase(PhaseReadyForReply)
		c.playAsync(res.utt.Synth)
		c.log.Infof("[reply] ✅ back-translation played")
	}
}

func (c *Controller) runPrimary(ctx context.Context, samples []int16) {
	utt, err := c.pipeline(ctx, samples, "", "en")
	c.results <- pipelineResult{kind: resultPrimaryDone, utt: utt, err: err}
}

func (c *Controller) runReply(ctx context.Context, targetLang string) {
	samples, err := c.recorder.Record(ctx, c.replyRecord)
	if err != nil {
		c.results <- pipelineResult{kind: resultReplyRecorded, err: err}
		return
	}
	c.results <- pipelineResult{kind: resultReplyRecorded}

	utt, err := c.pipeline(ctx, samples, "en", targetLang)
	c.results <- pipelineResult{kind: resultReplyDone, utt: utt, err: err}
}

// pipeline — клип → текст → перевод → голос. An empty source means the
// recognizer's detected language is used (primary flow).
func (c *Controller) pipeline(ctx context.Context, samples []int16, source, target string) (*Utterance, error) {
	utt := &Utterance{ID: uuid.NewString(), PCM: samples}

	wavPath, err := audio.WriteTempWAV(samples, c.sampleRate)
	if err != nil {
		return utt, fmt.Errorf("encode clip: %w", err)
	}
	defer os.Remove(wavPath)

	res, err := c.recognizer.Transcribe(ctx, wavPath)
	if err != nil {
		return utt, fmt.Errorf("transcribe: %w", err)
	}
	utt.Transcript = res.Text
	c.log.Infof("[pipeline] 🗣 transcribed (%s): %s", res.Language, res.Text)

	from := source
	if from == "" {
		from = res.Language
		utt.Language = res.Language
	} else {
		utt.Language = target
	}

	translated, err := c.translator.Translate(ctx, res.Text, from, target)
	if err != nil {
		return utt, fmt.Errorf("translate: %w", err)
	}
	utt.Translation = translated
	c.log.Infof("[pipeline] 🔤 %s: %s", target, translated)

	pcm, err := c.synthesizer.Synthesize(ctx, translated, target)
	if err != nil {
		return utt, fmt.Errorf("synthesize: %w", err)
	}
	utt.Synth = pcm
	return utt, nil
}

// playAsync queues playback without gating further hotkey handling.
func (c *Controller) playAsync(pcm []byte) {
	samples := audio.DecodePCM16(pcm)
	go func() {
		if err := c.player.Play(samples); err != nil {
			c.log.Errorf("[playback] failed: %v", err)
		}
	}()
}

func (c *Controller) setPhase(p Phase) {
	c.mu.Lock()
	c.session.Phase = p
	c.mu.Unlock()
	c.publish()
}

func (c *Controller) publish() {
	if c.reporter == nil {
		return
	}
	s := c.Session()
	c.reporter.Set(status.Snapshot{
		Phase:            s.Phase.String(),
		DetectedLanguage: s.DetectedLanguage,
		LastTranscript:   c.lastTranscript,
		LastTranslation:  c.lastTranslation,
	})
}
