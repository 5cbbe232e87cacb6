package openai

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
)

type IChatGPT interface {
	PolishResponse(ctx context.Context, userMessage string, draft string) (string, error)
}

type chatGPTService struct {
	client *openai.Client
	model  string
}

func NewChatGPT() IChatGPT {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_CHAT_MODEL")

	if model == "" {
		model = openai.GPT4
	}

	return &chatGPTService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// PolishResponse rewords an already-computed rule-based answer to read
// more naturally. All numbers and facts in the draft must survive the
// rewrite untouched; callers fall back to the draft on any error.
func (c *chatGPTService) PolishResponse(
	ctx context.Context,
	userMessage string,
	draft string,
) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role: openai.ChatMessageRoleSystem,
			Content: `Kamu adalah SakuBot, asisten keuangan untuk aplikasi pencatat keuangan mahasiswa.

Tugas kamu HANYA memperhalus gaya bahasa dari jawaban yang sudah dihitung sistem.

Aturan penting:
- JANGAN ubah angka, nominal rupiah, durasi, atau fakta apapun dari draft
- JANGAN tambah saran atau perhitungan baru
- Pertahankan format markdown (**tebal**, bullet •) dan emoji yang sudah ada
- Jawab dalam Bahasa Indonesia santai khas anak muda
- Kalau ragu, kembalikan draft apa adanya`,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: fmt.Sprintf("Pesan pengguna: %s\n\nDraft jawaban sistem:\n%s", userMessage, draft),
		},
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: 0.4,
			MaxTokens:   600,
		},
	)

	if err != nil {
		return "", fmt.Errorf("ChatGPT API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from ChatGPT")
	}

	return resp.Choices[0].Message.Content, nil
}
