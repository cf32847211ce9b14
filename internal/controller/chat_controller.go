package controller

import (
	"io"
	"mime/multipart"

	"ai-companion-be/internal/dto"
	"ai-companion-be/internal/pkg/apperror"
	"ai-companion-be/internal/pkg/serverutils"
	"ai-companion-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	SessionMessages(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	chat := r.Group("/chat")
	chat.Use(serverutils.JwtMiddleware)
	chat.Post("", c.Chat)

	messages := r.Group("/messages")
	messages.Use(serverutils.JwtMiddleware)
	messages.Get(":session_id", c.SessionMessages)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	userId, err := requestUserId(ctx)
	if err != nil {
		return err
	}

	req := dto.ChatRequest{
		SessionId: ctx.FormValue("session_id"),
		Message:   ctx.FormValue("message"),
	}

	if req.Audio, err = formFileBytes(ctx, "audio"); err != nil {
		return err
	}
	if req.Image, err = formFileBytes(ctx, "image"); err != nil {
		return err
	}

	res, err := c.chatService.Chat(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat", res))
}

func (c *chatController) SessionMessages(ctx *fiber.Ctx) error {
	userId, err := requestUserId(ctx)
	if err != nil {
		return err
	}
	sessionId, err := pathId(ctx, "session_id")
	if err != nil {
		return err
	}

	limit := ctx.QueryInt("limit", 0)

	res, err := c.chatService.GetSessionMessages(ctx.Context(), userId, sessionId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list session messages", res))
}

// formFileBytes reads an optional multipart file field fully into memory.
// Absent fields yield nil with no error.
func formFileBytes(ctx *fiber.Ctx, name string) ([]byte, error) {
	header, err := ctx.FormFile(name)
	if err != nil {
		return nil, nil
	}
	return readMultipartFile(header, name)
}

func readMultipartFile(header *multipart.FileHeader, name string) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, apperror.InvalidArgument("could not open uploaded %s file", name)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperror.InvalidArgument("could not read uploaded %s file", name)
	}
	return data, nil
}
