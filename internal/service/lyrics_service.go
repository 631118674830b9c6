package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/client"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/model"
)

// LyricsGenerator defines the interface for lyrics operations
type LyricsGenerator interface {
	Generate(ctx context.Context, req *model.LyricsGenerateRequest) (*model.LyricsGenerateResponse, error)
	Improve(ctx context.Context, req *model.LyricsImproveRequest) (*model.LyricsImproveResponse, error)
	GenerateTitle(ctx context.Context, req *model.TitleGenerateRequest) (*model.TitleGenerateResponse, error)
}

// LyricsService turns user stories into song lyrics through the LLM.
// The generation strategy is verbatim reuse: the model is instructed to
// keep the user's own sentences and only reformat them into 2 verses and
// a chorus.
type LyricsService struct {
	openaiClient *client.OpenAIClient
}

// NewLyricsService creates a new lyrics service
func NewLyricsService(openaiClient *client.OpenAIClient) *LyricsService {
	return &LyricsService{
		openaiClient: openaiClient,
	}
}

// themePrompts maps each theme to a per-language writing directive. Missing
// languages fall back to English; unknown themes fall back to love/en.
var themePrompts = map[model.Theme]map[string]string{
	model.ThemeLove: {
		"tr": "Aşk temalı, romantik ve duygusal bir şarkı sözü yazın. Sevgiliyle olan güzel anıları, özlemi ve derin bağı anlatan sözler olsun.",
		"en": "Write romantic and emotional song lyrics about love. Include beautiful memories with a loved one, longing, and deep connection.",
	},
	model.ThemeFriendship: {
		"tr": "Dostluk temalı, arkadaşlık bağının gücünü anlatan şarkı sözü yazın. Beraber geçirilen güzel zamanları ve dostluğun değerini vurgulayın.",
		"en": "Write song lyrics about friendship, highlighting the power of friendship bonds. Emphasize good times spent together and the value of friendship.",
	},
	model.ThemeCountry: {
		"tr": "Memleket sevgisi temalı şarkı sözü yazın. Vatana olan bağlılığı, memleketinin güzelliklerini ve özlemini anlatan sözler olsun.",
		"en": "Write song lyrics about homeland love. Include loyalty to country, the beauty of homeland, and nostalgia.",
	},
	model.ThemeNostalgia: {
		"tr": "Nostalji temalı şarkı sözü yazın. Geçmişin güzel anılarını, kayıp zamanları ve o dönemlere olan özlemi anlatan sözler.",
		"en": "Write nostalgic song lyrics about beautiful memories from the past, lost times, and longing for those periods.",
	},
	model.ThemeHope: {
		"tr": "Umut temalı şarkı sözü yazın. Gelecekteki güzel günlere olan inancı, zorluklara rağmen umudunu kaybetmemeyi anlatan sözler.",
		"en": "Write hopeful song lyrics about faith in beautiful future days, not losing hope despite difficulties.",
	},
	model.ThemeFamily: {
		"tr": "Aile temalı şarkı sözü yazın. Ailenin sıcaklığını, birlik beraberliği ve aile bağlarının gücünü anlatan sözler.",
		"en": "Write family-themed song lyrics about family warmth, unity, and the strength of family bonds.",
	},
	model.ThemeAdventure: {
		"tr": "Macera temalı şarkı sözü yazın. Yeni yerler keşfetme, heyecan verici yolculuklar ve özgürlük hissini anlatan sözler.",
		"en": "Write adventure-themed song lyrics about discovering new places, exciting journeys, and the feeling of freedom.",
	},
	model.ThemePeace: {
		"tr": "Barış temalı şarkı sözü yazın. İç huzuru, sakinlik ve dünyada barış özlemini anlatan sözler.",
		"en": "Write peace-themed song lyrics about inner peace, tranquility, and longing for world peace.",
	},
	model.ThemeHeartbreak: {
		"tr": "Kırık kalp temalı şarkı sözü yazın. Ayrılık acısını, kayıp sevgiyi ve kalp kırıklığını anlatan sözler.",
		"en": "Write heartbreak-themed song lyrics about the pain of separation, lost love, and heartbreak.",
	},
	model.ThemeHappiness: {
		"tr": "Mutluluk temalı şarkı sözü yazın. Yaşamın güzel anlarını, sevinci ve pozitif enerjiyi anlatan sözler.",
		"en": "Write happiness-themed song lyrics about life's beautiful moments, joy, and positive energy.",
	},
	model.ThemeSadness: {
		"tr": "Hüzün temalı şarkı sözü yazın. Üzüntüyü, acıyı ve duygusal derinliği anlatan sözler.",
		"en": "Write sadness-themed song lyrics about sorrow, pain, and emotional depth.",
	},
	model.ThemeCelebration: {
		"tr": "Kutlama temalı şarkı sözü yazın. Başarıları, özel günleri ve mutlu anları kutlayan sözler.",
		"en": "Write celebration-themed song lyrics celebrating achievements, special days, and happy moments.",
	},
	model.ThemeMotivation: {
		"tr": "Motivasyon temalı şarkı sözü yazın. İlham verici, güçlendirici ve hedeflere ulaşma konusunda motive edici sözler.",
		"en": "Write motivation-themed song lyrics that are inspiring, empowering, and motivating to achieve goals.",
	},
}

// langConfig holds the per-language formatting instructions
type langConfig struct {
	storyLabel    string
	instruction   string
	requirements  string
	systemMessage string
}

var langConfigs = map[string]langConfig{
	"tr": {
		storyLabel:  "Kullanıcının Hikayesi",
		instruction: "Bu hikayeyi 2 kıtalık şarkı sözüne dönüştür. Kullanıcının YAZDIĞI CÜMLELERİ DOĞRUDAN KULLAN.",
		requirements: `KESİN YAPISAL KURALLAR:
1. TAM OLARAK 2 kıta (verse) yaz - 3 veya 4 kıta YASAK
2. 1 nakarat (chorus) yaz
3. Her kıta tam 4 satır olmalı

KESİN İÇERİK KURALLARI:
1. Kullanıcının hikayesindeki AYNI KELİMELERİ ve AYNI CÜMLELERİ kullan
2. Kullanıcının yazdığı ifadeleri değiştirme, sadece şarkı formatına koy
3. Kullanıcının cümlelerini al ve satırlara böl
4. Sadece cümleler arası geçişler için 1-2 kelime ekleyebilirsin
5. Nakaratı kullanıcının ana fikrinden oluştur

Format: [Verse 1], [Chorus], [Verse 2], [Chorus] - BAŞKA FORMAT KULLANMA`,
		systemMessage: "Sen bir şarkı formatçısısın. Kullanıcının yazdığı hikayeyi KELİMESİ KELİMESİNE alıp şarkı formatına sokuyorsun. YENİ CÜMLELER YAZMA, kullanıcının yazdıklarını kullan. Sadece 2 verse + 1 chorus yaz.",
	},
	"en": {
		storyLabel:  "User's Story",
		instruction: "Transform this story into 2-verse song lyrics. Use the user's EXACT WORDS directly.",
		requirements: `STRICT STRUCTURAL RULES:
1. Write EXACTLY 2 verses - 3 or 4 verses are FORBIDDEN
2. Write 1 chorus
3. Each verse must have exactly 4 lines

STRICT CONTENT RULES:
1. Use the SAME WORDS and SAME SENTENCES from the user's story
2. Don't change user's phrases, just put them in song format
3. Take user's sentences and break them into lines
4. You may only add 1-2 words for transitions between sentences
5. Create chorus from user's main idea

Format: [Verse 1], [Chorus], [Verse 2], [Chorus] - DO NOT USE OTHER FORMATS`,
		systemMessage: "You are a song formatter. You take the user's story WORD FOR WORD and put it into song format. DO NOT WRITE NEW SENTENCES, use what the user wrote. Only write 2 verses + 1 chorus.",
	},
}

// Generate creates song lyrics from the user's story and theme
func (s *LyricsService) Generate(ctx context.Context, req *model.LyricsGenerateRequest) (*model.LyricsGenerateResponse, error) {
	start := time.Now()

	language := req.Language
	if language == "" {
		language = "tr"
	}

	var lyrics string
	if s.openaiClient == nil || !s.openaiClient.IsConfigured() {
		lyrics = s.mockLyrics(req.Story, req.Theme)
	} else {
		cfg := langConfigFor(language)
		userPrompt := buildGeneratePrompt(req.Story, req.Theme, language, cfg)

		content, err := s.openaiClient.ChatCompletion(ctx, cfg.systemMessage, userPrompt, 0.8, 1500)
		if err != nil {
			return nil, fmt.Errorf("AI generation failed: %w", err)
		}
		lyrics = strings.TrimSpace(content)
	}

	return &model.LyricsGenerateResponse{
		ID:             uuid.New().String(),
		Lyrics:         lyrics,
		Theme:          req.Theme,
		Language:       language,
		CreatedAt:      time.Now(),
		ProcessingTime: time.Since(start).Seconds(),
		WordCount:      len(strings.Fields(lyrics)),
	}, nil
}

// Improve refines existing lyrics while preserving the verse/chorus format
func (s *LyricsService) Improve(ctx context.Context, req *model.LyricsImproveRequest) (*model.LyricsImproveResponse, error) {
	if s.openaiClient == nil || !s.openaiClient.IsConfigured() {
		return &model.LyricsImproveResponse{
			ImprovedLyrics: req.OriginalLyrics,
			OriginalLyrics: req.OriginalLyrics,
		}, nil
	}

	prompt := fmt.Sprintf(`Aşağıdaki şarkı sözlerini daha iyi hale getirin:

Orijinal Hikaye: "%s"
Tema: %s
Mevcut Şarkı Sözü:
%s

Lütfen şarkı sözünü geliştirin:
- Daha akıcı hale getirin
- Kafiye düzenini iyileştirin
- Duygusal etkiyi artırın
- Hikayeyle bağlantıyı güçlendirin
- Aynı formatı koruyun (Verse, Chorus, vs.)`, req.Story, req.Theme, req.OriginalLyrics)

	content, err := s.openaiClient.ChatCompletion(ctx, "Sen şarkı sözlerini geliştiren uzman bir editörsün.", prompt, 0.7, 1500)
	if err != nil {
		return nil, fmt.Errorf("AI improvement failed: %w", err)
	}

	return &model.LyricsImproveResponse{
		ImprovedLyrics: strings.TrimSpace(content),
		OriginalLyrics: req.OriginalLyrics,
	}, nil
}

// GenerateTitle produces a short song title. Errors degrade to a themed
// fallback title instead of failing the request.
func (s *LyricsService) GenerateTitle(ctx context.Context, req *model.TitleGenerateRequest) (*model.TitleGenerateResponse, error) {
	title := fallbackTitle(req.Theme)

	if s.openaiClient != nil && s.openaiClient.IsConfigured() {
		excerpt := req.Lyrics
		if len(excerpt) > 500 {
			excerpt = excerpt[:500]
		}

		prompt := fmt.Sprintf(`Bu şarkı sözlerine uygun, çekici bir başlık öner:

Tema: %s
Şarkı Sözü:
%s...

Başlık:
- Kısa ve akılda kalıcı olsun (3-6 kelime)
- Şarkının ruhunu yansıtsın
- Sadece başlığı döndür, açıklama yapma`, req.Theme, excerpt)

		content, err := s.openaiClient.TitleCompletion(ctx, "", prompt)
		if err == nil {
			cleaned := strings.ReplaceAll(strings.TrimSpace(content), `"`, "")
			if cleaned != "" {
				title = cleaned
			}
		}
	}

	return &model.TitleGenerateResponse{
		Title: title,
		Theme: req.Theme,
	}, nil
}

func langConfigFor(language string) langConfig {
	if cfg, ok := langConfigs[language]; ok {
		return cfg
	}
	return langConfigs["en"]
}

func themePromptFor(theme model.Theme, language string) string {
	if prompts, ok := themePrompts[theme]; ok {
		if p, ok := prompts[language]; ok {
			return p
		}
		if p, ok := prompts["en"]; ok {
			return p
		}
	}
	return themePrompts[model.ThemeLove]["en"]
}

func buildGeneratePrompt(story string, theme model.Theme, language string, cfg langConfig) string {
	return fmt.Sprintf(`%s

%s: "%s"

%s

%s`, themePromptFor(theme, language), cfg.storyLabel, story, cfg.instruction, cfg.requirements)
}

func fallbackTitle(theme model.Theme) string {
	t := string(theme)
	if t == "" {
		return "Untitled Song"
	}
	return strings.ToUpper(t[:1]) + t[1:] + " Song"
}

// mockLyrics builds deterministic verbatim-reuse lyrics from the story when
// no AI client is configured. Mirrors the real strategy: the user's own
// sentences split into two 4-line verses plus a chorus.
func (s *LyricsService) mockLyrics(story string, theme model.Theme) string {
	sentences := splitSentences(story)
	lines := make([]string, 0, 8)
	for _, sent := range sentences {
		lines = append(lines, sent)
	}
	for len(lines) < 8 {
		lines = append(lines, lines[len(lines)%len(sentences)])
	}

	chorus := lines[0]

	var b strings.Builder
	b.WriteString("[Verse 1]\n")
	b.WriteString(strings.Join(lines[:4], "\n"))
	b.WriteString("\n\n[Chorus]\n")
	for i := 0; i < 4; i++ {
		b.WriteString(chorus)
		b.WriteString("\n")
	}
	b.WriteString("\n[Verse 2]\n")
	b.WriteString(strings.Join(lines[4:8], "\n"))
	b.WriteString("\n\n[Chorus]\n")
	for i := 0; i < 4; i++ {
		b.WriteString(chorus)
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

// splitSentences breaks a story into trimmed sentences
func splitSentences(story string) []string {
	raw := strings.FieldsFunc(story, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})

	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	if len(sentences) == 0 {
		sentences = []string{story}
	}
	return sentences
}
