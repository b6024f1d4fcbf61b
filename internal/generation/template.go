package generation

import (
	"context"
	"fmt"
	"strings"
)

// TemplateService is the canned stand-in for a real generation backend. It
// serves curated decks for a few known topics and falls back to generic
// question templates for everything else. The generated tag is the first
// word of the lowercased topic.
type TemplateService struct{}

func NewTemplateService() *TemplateService {
	return &TemplateService{}
}

type templateCard struct {
	question string
	answer   string
}

var curatedDecks = map[string][]templateCard{
	"revolução francesa": {
		{"Quando começou a Revolução Francesa?", "A Revolução Francesa começou em 1789, com a Queda da Bastilha em 14 de julho."},
		{"Quais eram os três estados na França pré-revolucionária?", "Primeiro Estado (Clero), Segundo Estado (Nobreza) e Terceiro Estado (Povo comum, burguesia)."},
		{"O que foi a Queda da Bastilha?", "Foi a tomada da prisão-fortaleza de Bastilha pelo povo de Paris em 14 de julho de 1789, símbolo do início da revolução."},
		{"Qual era o lema da Revolução Francesa?", "Liberdade, Igualdade, Fraternidade (Liberté, Égalité, Fraternité)."},
		{"Quem era o rei da França durante a Revolução?", "Luís XVI, que foi executado na guilhotina em 1793."},
		{"O que foi o Período do Terror?", "Período de 1793-1794 liderado por Robespierre, marcado por execuções em massa de \"inimigos da revolução\"."},
		{"Quem foi Napoleão Bonaparte?", "General que ascendeu ao poder após a revolução e tornou-se Imperador da França em 1804."},
		{"O que foi a Declaração dos Direitos do Homem e do Cidadão?", "Documento de 1789 que estabeleceu direitos fundamentais como liberdade, propriedade e igualdade perante a lei."},
		{"Qual foi a causa econômica principal da revolução?", "Crise financeira grave, com altos impostos para o Terceiro Estado e privilégios fiscais para clero e nobreza."},
		{"O que foi a Assembleia Nacional Constituinte?", "Assembleia formada em 1789 pelo Terceiro Estado para criar uma constituição e limitar o poder real."},
	},
	"python": {
		{"O que é Python?", "Python é uma linguagem de programação de alto nível, interpretada, com sintaxe clara e foco em legibilidade."},
		{"Como declarar uma variável em Python?", "Basta atribuir um valor: nome = \"João\" ou numero = 42. Python tem tipagem dinâmica."},
		{"O que é uma lista em Python?", "Estrutura de dados ordenada e mutável. Ex: frutas = [\"maçã\", \"banana\", \"laranja\"]"},
		{"Qual a diferença entre lista e tupla?", "Listas são mutáveis (podem ser alteradas), tuplas são imutáveis (não podem ser alteradas após criação)."},
		{"O que é um dicionário em Python?", "Estrutura de dados com pares chave-valor. Ex: pessoa = {\"nome\": \"Ana\", \"idade\": 25}"},
		{"Como criar uma função em Python?", "Usando def: def saudacao(nome): return f\"Olá, {nome}!\""},
		{"O que faz o comando \"for\" em Python?", "Itera sobre uma sequência. Ex: for item in lista: print(item)"},
		{"O que é indentação em Python?", "Espaços no início das linhas que definem blocos de código. É obrigatória e substitui chaves {}."},
		{"Como importar uma biblioteca em Python?", "Usando import: import math ou from math import sqrt"},
		{"O que é uma list comprehension?", "Forma concisa de criar listas: quadrados = [x**2 for x in range(10)]"},
	},
}

var genericTemplates = []struct {
	question string
	answer   string
}{
	{"Qual é a definição de %[1]s?", "%[1]s é um conceito fundamental que envolve aspectos teóricos e práticos importantes para o entendimento da área."},
	{"Quais são as principais características de %[1]s?", "As principais características incluem sua estrutura, funcionamento e aplicações práticas no contexto estudado."},
	{"Qual a importância de %[1]s?", "%[1]s é importante porque permite compreender fenômenos relacionados e aplicar conhecimentos de forma prática."},
	{"Como %[1]s se relaciona com outros conceitos?", "%[1]s está conectado a diversos outros conceitos da área, formando uma base de conhecimento integrada."},
	{"Quais são os exemplos práticos de %[1]s?", "Exemplos incluem aplicações cotidianas e casos de uso que demonstram a relevância do conceito."},
	{"Qual é a origem histórica de %[1]s?", "O conceito de %[1]s surgiu a partir de estudos e descobertas que moldaram o entendimento atual."},
	{"Quais são os benefícios de estudar %[1]s?", "Estudar %[1]s desenvolve habilidades analíticas e proporciona conhecimento aplicável."},
	{"Como aplicar %[1]s na prática?", "A aplicação prática envolve identificar situações relevantes e usar os princípios de %[1]s para resolver problemas."},
}

// topicTag derives the suggested tag: the first word of the lowercased
// topic.
func topicTag(topic string) string {
	return strings.Fields(strings.ToLower(topic))[0]
}

// Generate returns at most req.Quantity cards. The style only affects a
// real backend's prompt; the canned decks ignore it.
func (s *TemplateService) Generate(ctx context.Context, req Request) ([]Card, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	topic := strings.ToLower(strings.TrimSpace(req.Topic))
	tag := topicTag(req.Topic)

	for key, deck := range curatedDecks {
		if !strings.Contains(topic, key) {
			continue
		}
		cards := make([]Card, 0, req.Quantity)
		for _, entry := range deck[:min(req.Quantity, len(deck))] {
			cards = append(cards, Card{Question: entry.question, Answer: entry.answer, Tag: tag})
		}
		return cards, nil
	}

	cards := make([]Card, 0, req.Quantity)
	for _, tpl := range genericTemplates[:min(req.Quantity, len(genericTemplates))] {
		cards = append(cards, Card{
			Question: fmt.Sprintf(tpl.question, req.Topic),
			Answer:   fmt.Sprintf(tpl.answer, req.Topic),
			Tag:      tag,
		})
	}
	return cards, nil
}
