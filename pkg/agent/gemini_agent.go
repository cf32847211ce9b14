package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-companion-be/internal/constant"
	"ai-companion-be/pkg/speech"
	"ai-companion-be/pkg/vision"

	"google.golang.org/genai"
)

// GeminiAgent drives the companion with Gemini models: a light routing call
// decides the workflow, a persona call writes the reply, and the speech and
// vision collaborators produce any artifact the workflow asks for.
type GeminiAgent struct {
	client      *genai.Client
	chatModel   string
	routerModel string
	synthesizer speech.Synthesizer
	generator   vision.Generator
	memory      *shortTermMemory
}

func NewGeminiAgent(
	client *genai.Client,
	chatModel string,
	routerModel string,
	synthesizer speech.Synthesizer,
	generator vision.Generator,
) *GeminiAgent {
	return &GeminiAgent{
		client:      client,
		chatModel:   chatModel,
		routerModel: routerModel,
		synthesizer: synthesizer,
		generator:   generator,
		memory:      newShortTermMemory(),
	}
}

func (a *GeminiAgent) Respond(ctx context.Context, sessionId string, history []Turn, input string) (*Result, error) {
	turns, cached := a.memory.Load(sessionId)
	if !cached {
		a.memory.Seed(sessionId, history)
		turns = history
	}

	workflow, err := a.decideWorkflow(ctx, turns, input)
	if err != nil {
		return nil, err
	}

	reply, err := a.generateReply(ctx, turns, input)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Text:     reply,
		Workflow: workflow,
	}

	switch workflow {
	case constant.WorkflowAudio:
		audio, err := a.synthesizer.Synthesize(ctx, reply)
		if err != nil {
			return nil, err
		}
		result.Audio = audio
	case constant.WorkflowImage:
		scenario, err := a.imageScenario(ctx, turns, input)
		if err != nil {
			return nil, err
		}
		path, err := a.generator.Generate(ctx, scenario)
		if err != nil {
			return nil, err
		}
		result.ImagePath = path
	}

	a.memory.Append(sessionId,
		Turn{Role: genai.RoleUser, Text: input},
		Turn{Role: genai.RoleModel, Text: reply},
	)

	return result, nil
}

// decideWorkflow asks the router model to pick the response modality.
// Anything that doesn't parse falls back to a plain conversation turn.
func (a *GeminiAgent) decideWorkflow(ctx context.Context, turns []Turn, input string) (string, error) {
	contents := turnsToContents(turns, input)
	res, err := a.client.Models.GenerateContent(ctx, a.routerModel, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(constant.WorkflowRouterPrompt, genai.RoleModel),
	})
	if err != nil {
		return "", fmt.Errorf("agent: deciding workflow: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(strings.Trim(res.Text(), "'\"`.")))
	switch answer {
	case constant.WorkflowImage, constant.WorkflowAudio, constant.WorkflowConversation:
		return answer, nil
	default:
		return constant.WorkflowConversation, nil
	}
}

func (a *GeminiAgent) generateReply(ctx context.Context, turns []Turn, input string) (string, error) {
	contents := turnsToContents(turns, input)
	res, err := a.client.Models.GenerateContent(ctx, a.chatModel, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(a.personaPrompt(), genai.RoleModel),
	})
	if err != nil {
		return "", fmt.Errorf("agent: generating reply: %w", err)
	}
	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("agent: unexpected empty response from chat model: %v", res)
	}
	return text, nil
}

// imageScenario turns the conversation into a visual prompt for the image
// model.
func (a *GeminiAgent) imageScenario(ctx context.Context, turns []Turn, input string) (string, error) {
	contents := turnsToContents(turns, input)
	res, err := a.client.Models.GenerateContent(ctx, a.chatModel, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(constant.ImageScenarioPrompt, genai.RoleModel),
	})
	if err != nil {
		return "", fmt.Errorf("agent: building image scenario: %w", err)
	}
	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("agent: unexpected empty scenario from chat model: %v", res)
	}
	return text, nil
}

// personaPrompt is the character card plus the activity for the current hour
// so "what are you doing" answers stay grounded.
func (a *GeminiAgent) personaPrompt() string {
	hour := time.Now().Hour()
	activity := ""
	for h := hour; h >= 0; h-- {
		if act, ok := constant.DailySchedule[h]; ok {
			activity = act
			break
		}
	}
	if activity == "" {
		return constant.CharacterCardPrompt
	}
	return constant.CharacterCardPrompt + "\n\n## Current Activity\n\n" + activity
}

func turnsToContents(turns []Turn, input string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(turns)+1)
	for _, turn := range turns {
		role := genai.Role(genai.RoleUser)
		if turn.Role == genai.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(input, genai.RoleUser))
	return contents
}
