package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// SoundID 音效标识
type SoundID string

const (
	// SoundUnlock 解锁完成提示音（上行两音）
	SoundUnlock SoundID = "unlock"
	// SoundLock 回到锁定时的提示音（下行两音）
	SoundLock SoundID = "lock"
	// SoundClick 按钮点击音
	SoundClick SoundID = "click"
)

// Tone 单个音符
type Tone struct {
	Frequency float64 // Hz，0 表示静音
	Duration  float64 // 秒
}

// soundTones 每个音效对应的音符序列
var soundTones = map[SoundID][]Tone{
	SoundUnlock: {{Frequency: 660, Duration: 0.07}, {Frequency: 990, Duration: 0.12}},
	SoundLock:   {{Frequency: 740, Duration: 0.07}, {Frequency: 494, Duration: 0.12}},
	SoundClick:  {{Frequency: 1200, Duration: 0.03}},
}

const (
	toneAmplitude = 0.3
	toneAttack    = 0.005 // 秒
)

// SynthesizeTones 把音符序列合成为 16 位小端立体声 PCM（audio.Context 的格式）
// 每个音符有短暂的起音和线性衰减，首尾采样为 0，避免爆音
func SynthesizeTones(sampleRate int, tones ...Tone) []byte {
	total := 0
	for _, tone := range tones {
		total += toneSamples(sampleRate, tone)
	}

	buf := make([]byte, 0, total*4)
	for _, tone := range tones {
		n := toneSamples(sampleRate, tone)
		attack := int(toneAttack * float64(sampleRate))
		for i := 0; i < n; i++ {
			var v float64
			if tone.Frequency > 0 && n > 1 {
				env := float64(n-1-i) / float64(n-1)
				if i < attack {
					env *= float64(i) / float64(attack)
				}
				phase := 2 * math.Pi * tone.Frequency * float64(i) / float64(sampleRate)
				v = toneAmplitude * env * math.Sin(phase)
			}
			s := uint16(int16(v * math.MaxInt16))
			// 左右声道相同
			buf = binary.LittleEndian.AppendUint16(buf, s)
			buf = binary.LittleEndian.AppendUint16(buf, s)
		}
	}
	return buf
}

func toneSamples(sampleRate int, tone Tone) int {
	if tone.Duration <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(tone.Duration * float64(sampleRate))
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理所有音效的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 音效在首次播放时合成并缓存播放器
type AudioManager struct {
	audioContext    *audio.Context            // 可为 nil（无音频设备或测试环境）
	settingsManager *SettingsManager          // 设置管理器（用于读取音量设置，可为 nil）
	soundPlayers    map[SoundID]*audio.Player // 音效播放器缓存
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - audioContext: 音频上下文，可为 nil（此时所有播放请求都被忽略）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(audioContext *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    audioContext,
		settingsManager: sm,
		soundPlayers:    make(map[SoundID]*audio.Player),
	}
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID SoundID) bool {
	if !am.soundEnabled() {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.GetSoundVolume())

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// SetSoundVolume 设置音效音量，立即应用到所有缓存的播放器
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}

	for _, player := range am.soundPlayers {
		player.SetVolume(clampVolume(volume))
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}

// soundEnabled 设置中是否启用了音效
func (am *AudioManager) soundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID SoundID) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	if am.audioContext == nil {
		return nil
	}

	tones, ok := soundTones[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	player := am.audioContext.NewPlayerFromBytes(SynthesizeTones(am.audioContext.SampleRate(), tones...))
	am.soundPlayers[soundID] = player
	return player
}
