package generation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateService_Generate(t *testing.T) {
	tests := []struct {
		name          string
		request       Request
		wantCount     int
		wantTag       string
		wantFirstCard Card
		wantErr       bool
	}{
		{
			name:      "curated deck for a known topic",
			request:   Request{Topic: "Revolução Francesa", Quantity: 5, Style: StyleQuestion},
			wantCount: 5,
			wantTag:   "revolução",
			wantFirstCard: Card{
				Question: "Quando começou a Revolução Francesa?",
				Answer:   "A Revolução Francesa começou em 1789, com a Queda da Bastilha em 14 de julho.",
				Tag:      "revolução",
			},
		},
		{
			name:      "curated deck matched as a substring",
			request:   Request{Topic: "programação em Python para iniciantes", Quantity: 3, Style: StyleDefinition},
			wantCount: 3,
			wantTag:   "programação",
			wantFirstCard: Card{
				Question: "O que é Python?",
				Answer:   "Python é uma linguagem de programação de alto nível, interpretada, com sintaxe clara e foco em legibilidade.",
				Tag:      "programação",
			},
		},
		{
			name:      "generic templates for an unknown topic",
			request:   Request{Topic: "Fotossíntese", Quantity: 4, Style: StyleExample},
			wantCount: 4,
			wantTag:   "fotossíntese",
			wantFirstCard: Card{
				Question: "Qual é a definição de Fotossíntese?",
				Answer:   "Fotossíntese é um conceito fundamental que envolve aspectos teóricos e práticos importantes para o entendimento da área.",
				Tag:      "fotossíntese",
			},
		},
		{
			name:      "quantity capped by the curated deck size",
			request:   Request{Topic: "python", Quantity: 50, Style: StyleQuestion},
			wantCount: 10,
			wantTag:   "python",
			wantFirstCard: Card{
				Question: "O que é Python?",
				Answer:   "Python é uma linguagem de programação de alto nível, interpretada, com sintaxe clara e foco em legibilidade.",
				Tag:      "python",
			},
		},
		{
			name:      "quantity capped by the generic template count",
			request:   Request{Topic: "Biologia Celular", Quantity: 50, Style: StyleAnalogy},
			wantCount: 8,
			wantTag:   "biologia",
			wantFirstCard: Card{
				Question: "Qual é a definição de Biologia Celular?",
				Answer:   "Biologia Celular é um conceito fundamental que envolve aspectos teóricos e práticos importantes para o entendimento da área.",
				Tag:      "biologia",
			},
		},
		{
			name:    "empty topic",
			request: Request{Topic: "   ", Quantity: 5, Style: StyleQuestion},
			wantErr: true,
		},
		{
			name:    "non-positive quantity",
			request: Request{Topic: "python", Quantity: 0, Style: StyleQuestion},
			wantErr: true,
		},
		{
			name:    "unknown style",
			request: Request{Topic: "python", Quantity: 5, Style: "haiku"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTemplateService().Generate(context.Background(), tt.request)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrGenerationFailed)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tt.wantCount)
			assert.Equal(t, tt.wantFirstCard, got[0])
			for _, card := range got {
				assert.Equal(t, tt.wantTag, card.Tag)
				assert.NotEmpty(t, card.Question)
				assert.NotEmpty(t, card.Answer)
			}
		})
	}
}

func TestTemplateService_Generate_canceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := NewTemplateService().Generate(ctx, Request{Topic: "python", Quantity: 5, Style: StyleQuestion})
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Nil(t, got)
}

func TestParseStyle(t *testing.T) {
	for _, value := range []string{"definition", "question", "example", "analogy"} {
		style, err := ParseStyle(value)
		require.NoError(t, err)
		assert.Equal(t, Style(value), style)
	}

	_, err := ParseStyle("bullet")
	assert.Error(t, err)
}
