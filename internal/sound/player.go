package sound

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

//go:embed alarm.wav
var alarmWAV []byte

var (
	ErrDeviceUnavailable = errors.New("audio device unavailable")
	ErrDecode            = errors.New("audio decode failed")
)

// 扬声器在进程内只初始化一次
var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker(format beep.Format) error {
	speakerOnce.Do(func() {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			speakerErr = fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
		}
	})
	return speakerErr
}

// Player 播放内嵌的提示音
type Player struct {
	buffer *beep.Buffer
	volume float64
}

// NewPlayer 解码内嵌的 alarm.wav。volume 以 2 为底数，0 表示原始音量。
func NewPlayer(volume float64) (*Player, error) {
	buffer, err := decode(alarmWAV)
	if err != nil {
		return nil, err
	}
	return &Player{buffer: buffer, volume: volume}, nil
}

func decode(data []byte) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return buffer, nil
}

// Play 同步播放提示音，直到播放结束才返回
func (p *Player) Play() error {
	if err := initSpeaker(p.buffer.Format()); err != nil {
		return err
	}

	volumeCtrl := &effects.Volume{
		Streamer: p.buffer.Streamer(0, p.buffer.Len()),
		Base:     2,
		Volume:   p.volume,
		Silent:   false,
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(volumeCtrl, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}

// Length 返回提示音的时长
func (p *Player) Length() time.Duration {
	return p.buffer.Format().SampleRate.D(p.buffer.Len())
}
