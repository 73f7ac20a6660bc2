package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/defensoria-df/solar-transcricao/internal/domain/entities"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	speakerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// printer renders command output as styled text, or as JSON when asked
type printer struct {
	out  io.Writer
	json bool
}

func (p printer) videos(caseNumber string, videos []entities.VideoRef) error {
	if p.json {
		return p.encode(map[string]any{
			"numero_processo": caseNumber,
			"videos":          videos,
			"total":           len(videos),
		})
	}

	fmt.Fprintln(p.out, titleStyle.Render(fmt.Sprintf("Processo %s", caseNumber)))
	if len(videos) == 0 {
		fmt.Fprintln(p.out, mutedStyle.Render("Nenhum vídeo encontrado."))
		return nil
	}
	for _, v := range videos {
		fmt.Fprintf(p.out, "  %s  %s\n", speakerStyle.Render(v.DocumentID), v.Name)
		if v.Link != "" {
			fmt.Fprintf(p.out, "      %s\n", mutedStyle.Render(v.Link))
		}
	}
	fmt.Fprintln(p.out, mutedStyle.Render(fmt.Sprintf("%d vídeo(s)", len(videos))))
	return nil
}

func (p printer) transcript(video entities.VideoRef, transcript entities.FormattedTranscript) error {
	if p.json {
		return p.encode(map[string]any{
			"video":       video,
			"transcricao": transcript.String(),
		})
	}

	fmt.Fprintln(p.out, titleStyle.Render(fmt.Sprintf("%s (%s)", video.Name, video.DocumentID)))
	if transcript.IsEmpty() {
		fmt.Fprintln(p.out, mutedStyle.Render("Transcrição vazia."))
		return nil
	}
	for _, block := range strings.Split(transcript.String(), "\n\n") {
		speaker, text, found := strings.Cut(block, "\n")
		if found && strings.HasSuffix(speaker, ":") {
			fmt.Fprintln(p.out, speakerStyle.Render(speaker))
			fmt.Fprintln(p.out, text)
		} else {
			fmt.Fprintln(p.out, block)
		}
		fmt.Fprintln(p.out)
	}
	return nil
}

func (p printer) submitted() error {
	if p.json {
		return p.encode(map[string]any{"success": true})
	}
	fmt.Fprintln(p.out, successStyle.Render("Transcrição enviada ao SOLAR com sucesso!"))
	return nil
}

func (p printer) encode(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
