package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkimathi/darasa/core/collab"
)

// collabApi serves the four independent collections. The server performs
// presence validation only; role checks happen client-side.
type collabApi struct {
	repo collab.Repository
}

func registerCollabAPI(g *echo.Group, repo collab.Repository) {
	api := collabApi{repo: repo}

	g.GET("/messages", api.messageList)
	g.POST("/messages", api.messageCreate)

	g.GET("/assignments", api.assignmentList)
	g.POST("/assignments", api.assignmentCreate)
	g.DELETE("/assignments/:id", api.assignmentDestroy)

	g.GET("/notes", api.noteList)
	g.POST("/notes", api.noteCreate)
	g.DELETE("/notes/:id", api.noteDestroy)

	g.GET("/announcements", api.announcementList)
	g.POST("/announcements", api.announcementCreate)
}

// Handlers

func (api *collabApi) messageList(ctx echo.Context) error {
	msgs, err := api.repo.QueryMessages(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, msgs)
}

func (api *collabApi) messageCreate(ctx echo.Context) error {
	data := new(collab.NewMessage)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	msg, err := api.repo.CreateMessage(ctx.Request().Context(), data.Record())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, msg)
}

func (api *collabApi) assignmentList(ctx echo.Context) error {
	items, err := api.repo.QueryAssignments(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *collabApi) assignmentCreate(ctx echo.Context) error {
	data := new(collab.NewAssignment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	a, err := api.repo.CreateAssignment(ctx.Request().Context(), data.Record())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api *collabApi) assignmentDestroy(ctx echo.Context) error {
	id := ctx.Param("id")
	if err := api.repo.DeleteAssignment(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"deleted": id})
}

func (api *collabApi) noteList(ctx echo.Context) error {
	items, err := api.repo.QueryNotes(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *collabApi) noteCreate(ctx echo.Context) error {
	data := new(collab.NewNote)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	n, err := api.repo.CreateNote(ctx.Request().Context(), data.Record())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, n)
}

func (api *collabApi) noteDestroy(ctx echo.Context) error {
	id := ctx.Param("id")
	if err := api.repo.DeleteNote(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"deleted": id})
}

func (api *collabApi) announcementList(ctx echo.Context) error {
	items, err := api.repo.QueryAnnouncements(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *collabApi) announcementCreate(ctx echo.Context) error {
	data := new(collab.NewAnnouncement)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	a, err := api.repo.CreateAnnouncement(ctx.Request().Context(), data.Record())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, a)
}
