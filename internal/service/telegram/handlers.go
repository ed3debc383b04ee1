package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/ilyadubrovsky/grades-calculator/internal/config/answers"
	"github.com/ilyadubrovsky/grades-calculator/internal/domain"
	ierrors "github.com/ilyadubrovsky/grades-calculator/internal/errors"
	"github.com/ilyadubrovsky/grades-calculator/internal/service/grade"
	"github.com/ilyadubrovsky/grades-calculator/internal/service/report"
	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"
)

func (s *svc) handleStartCommand(c tele.Context) error {
	return s.SendMessageWithOpts(c.Chat().ID, answers.Start)
}

func (s *svc) handleHelpCommand(c tele.Context) error {
	return s.SendMessageWithOpts(c.Chat().ID, answers.Help)
}

func (s *svc) handleCalcCommand(c tele.Context) error {
	input, err := parseGradeInput(c.Args())
	if err != nil {
		return s.SendMessageWithOpts(c.Chat().ID, answers.CalcUsage)
	}

	return s.SendMessageWithOpts(c.Chat().ID, renderEvaluation(grade.Evaluate(input)))
}

func (s *svc) handleAddCommand(c tele.Context) error {
	form, err := parseSimpleForm(c.Args())
	if err != nil {
		return s.SendMessageWithOpts(c.Chat().ID, answers.AddUsage)
	}

	return s.submit(c, false, form)
}

func (s *svc) handleAddFullCommand(c tele.Context) error {
	form, err := parseFullForm(c.Args())
	if err != nil {
		return s.SendMessageWithOpts(c.Chat().ID, answers.AddFullUsage)
	}

	return s.submit(c, true, form)
}

func (s *svc) submit(c tele.Context, fullFormMode bool, form *domain.CourseForm) error {
	chatID := c.Chat().ID

	state := s.formState(chatID)
	if state.FullFormMode != fullFormMode {
		state = s.coursesSvc.ToggleFullForm(state)
	}

	state, view, err := s.coursesSvc.Submit(context.Background(), state, form)
	s.saveFormState(chatID, state)
	if err != nil {
		return s.replyError(c, "coursesSvc.Submit", err)
	}

	return s.SendMessageWithOpts(chatID, answers.CourseSaved+"\n\n"+renderView(view))
}

func (s *svc) handleEditCommand(c tele.Context) error {
	chatID := c.Chat().ID

	index, err := parseIndex(c.Args())
	if err != nil {
		return s.SendMessageWithOpts(chatID, answers.IndexUsage)
	}

	state, course, err := s.coursesSvc.BeginEdit(context.Background(), s.formState(chatID), index)
	if err != nil {
		return s.replyError(c, "coursesSvc.BeginEdit", err)
	}
	s.saveFormState(chatID, state)

	return s.SendMessageWithOpts(chatID, renderEditing(index, course))
}

func (s *svc) handleCancelCommand(c tele.Context) error {
	chatID := c.Chat().ID
	s.saveFormState(chatID, s.coursesSvc.BeginAdd(s.formState(chatID)))

	return s.SendMessageWithOpts(chatID, answers.EditCancelled)
}

func (s *svc) handleDeleteCommand(c tele.Context) error {
	chatID := c.Chat().ID

	index, err := parseIndex(c.Args())
	if err != nil {
		return s.SendMessageWithOpts(chatID, answers.IndexUsage)
	}

	state, view, err := s.coursesSvc.Delete(context.Background(), s.formState(chatID), index)
	if err != nil {
		return s.replyError(c, "coursesSvc.Delete", err)
	}
	s.saveFormState(chatID, state)

	return s.SendMessageWithOpts(chatID, answers.CourseDeleted+"\n\n"+renderView(view))
}

func (s *svc) handleListCommand(c tele.Context) error {
	view, err := s.coursesSvc.View(context.Background())
	if err != nil {
		return s.replyError(c, "coursesSvc.View", err)
	}

	return s.SendMessageWithOpts(c.Chat().ID, renderView(view))
}

func (s *svc) handleExportCommand(c tele.Context) error {
	return s.sendReport(c, "promedios.html", report.RenderHTML)
}

func (s *svc) handleXLSXCommand(c tele.Context) error {
	return s.sendReport(c, "promedios.xlsx", report.RenderXLSX)
}

func (s *svc) sendReport(
	c tele.Context,
	fileName string,
	render func(w io.Writer, view *domain.CoursesView) error,
) error {
	view, err := s.coursesSvc.View(context.Background())
	if err != nil {
		return s.replyError(c, "coursesSvc.View", err)
	}

	buf := &bytes.Buffer{}
	if err = render(buf, view); err != nil {
		return s.replyError(c, "render", err)
	}

	document := &tele.Document{
		File:     tele.FromReader(buf),
		FileName: fileName,
	}

	_, err = s.bot.Send(tele.ChatID(c.Chat().ID), document)
	return err
}

func (s *svc) handleDocument(c tele.Context) error {
	chatID := c.Chat().ID
	document := c.Message().Document

	parse, err := importParser(document.FileName)
	if err != nil {
		return s.SendMessageWithOpts(chatID, answers.ImportFailed)
	}

	reader, err := s.bot.File(&document.File)
	if err != nil {
		return s.replyError(c, "bot.File", err)
	}
	defer reader.Close()

	records, err := parse(reader)
	if err != nil {
		log.Warn().Int64("chat", chatID).Msgf("handleDocument: parse: %v", err)
		return s.SendMessageWithOpts(chatID, answers.ImportFailed)
	}

	imported, view, err := s.coursesSvc.Import(context.Background(), records)
	if err != nil {
		return s.replyError(c, "coursesSvc.Import", err)
	}

	return s.SendMessageWithOpts(chatID,
		fmt.Sprintf(answers.CoursesImported, imported)+"\n\n"+renderView(view))
}

func importParser(fileName string) (func(io.Reader) ([]*domain.CourseRecord, error), error) {
	switch strings.ToLower(path.Ext(fileName)) {
	case ".html", ".htm":
		return report.ParseHTML, nil
	case ".xlsx":
		return report.ParseXLSX, nil
	}

	return nil, fmt.Errorf("%q: %w", fileName, ierrors.ErrUnsupportedImport)
}

func (s *svc) handleText(c tele.Context) error {
	return s.SendMessageWithOpts(c.Chat().ID, answers.Default)
}

// replyError answers known domain errors and reports the rest to OnError.
func (s *svc) replyError(c tele.Context, op string, err error) error {
	chatID := c.Chat().ID

	switch {
	case errors.Is(err, ierrors.ErrIndexOutOfRange):
		return s.SendMessageWithOpts(chatID, answers.IndexOutOfRange)
	case errors.Is(err, ierrors.ErrInvalidCourseForm):
		return s.SendMessageWithOpts(chatID, answers.InvalidForm)
	case errors.Is(err, ierrors.ErrMalformedStoredData):
		log.Error().Int64("chat", chatID).Msgf("%s: %v", op, err)
		return s.SendMessageWithOpts(chatID, answers.MalformedData)
	}

	if sendErr := s.SendMessageWithOpts(chatID, answers.BotError); sendErr != nil {
		log.Error().Int64("chat", chatID).Msgf("send bot error: %v", sendErr)
	}

	return fmt.Errorf("%s: %w", op, err)
}
