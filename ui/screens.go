package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/skyfall/asset"
)

const title = `[::b]
   ___  _  ____   __ ___  _   _    _
  / __|| |/ /\ \ / /| __|/_\ | |  | |
  \__ \| ' <  \ V / | _|/ _ \| |__| |__
  |___/|_|\_\  |_|  |_|/_/ \_\____|____|
[::-]`

// centered places p in the middle of the screen at the given size
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

func newText(text string) *tview.TextView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText(text)
	tv.SetBackgroundColor(tcell.ColorDefault)
	return tv
}

func newButton(label string, selected func()) *tview.Button {
	b := tview.NewButton(label).SetSelectedFunc(selected)
	b.SetBackgroundColor(tcell.ColorDarkSlateBlue)
	b.SetLabelColor(tcell.ColorWhite)
	b.SetBackgroundColorActivated(tcell.ColorGold)
	b.SetLabelColorActivated(tcell.ColorBlack)
	return b
}

// buttonRow centres a single button horizontally
func buttonRow(b *tview.Button, width int) *tview.Flex {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(b, width, 0, true).
		AddItem(nil, 0, 1, false)
}

type menuScreen struct {
	root     tview.Primitive
	best     *tview.TextView
	tutorial *tview.Button
}

func newMenuScreen(onTutorial func()) *menuScreen {
	m := &menuScreen{
		best:     newText(""),
		tutorial: newButton("How to play", onTutorial),
	}

	hint := newText("[gray]Click anywhere to play · q to quit[-]")
	body := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(newText(title), 7, 0, false).
		AddItem(m.best, 2, 0, false).
		AddItem(hint, 2, 0, false).
		AddItem(buttonRow(m.tutorial, 17), 1, 0, true)

	m.root = centered(body, 50, 12)
	return m
}

func (m *menuScreen) setBest(best int64) {
	m.best.SetText(fmt.Sprintf("Best score: [yellow]%d[-]", best))
}

type tutorialScreen struct {
	root tview.Primitive
	back *tview.Button
}

func newTutorialScreen(onBack func()) *tutorialScreen {
	t := &tutorialScreen{
		back: newButton("Back", onBack),
	}

	text := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetText(asset.TutorialText)
	text.SetBorder(true).SetTitle(" Skyfall ")

	body := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(text, 0, 1, false).
		AddItem(buttonRow(t.back, 10), 1, 0, true)

	t.root = centered(body, 72, 26)
	return t
}

type endScreen struct {
	root  tview.Primitive
	score *tview.TextView
	cont  *tview.Button
}

func newEndScreen(onContinue func()) *endScreen {
	e := &endScreen{
		score: newText(""),
	}
	e.cont = newButton("Continue", onContinue)

	body := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(newText("[red::b]GAME OVER[-::-]"), 2, 0, false).
		AddItem(e.score, 3, 0, false).
		AddItem(buttonRow(e.cont, 14), 1, 0, true)

	e.root = centered(body, 40, 6)
	return e
}

func (e *endScreen) setResult(score, best int64) {
	marker := ""
	if score >= best && score > 0 {
		marker = "  [yellow]new best![-]"
	}
	e.score.SetText(fmt.Sprintf("Score: [::b]%d[::-]%s\nBest: %d", score, marker, best))
}
