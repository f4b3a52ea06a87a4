package client

import (
	"fmt"
	"time"

	"github.com/tomz197/cyberjet/internal/draw"
	"github.com/tomz197/cyberjet/internal/loop"
	"github.com/tomz197/cyberjet/internal/loop/config"
	"github.com/tomz197/cyberjet/internal/loop/server"
	"github.com/tomz197/cyberjet/internal/object"
)

// ASCII art titles (figlet "small" font)
var (
	titleArt = []string{
		`  ___ __   __ ___  ___  ___        _  ___  _____ `,
		` / __|\ \ / /| _ )| __|| _ \    _ | || __||_   _|`,
		`| (__  \ V / | _ \| _| |   /   | || || _|   | |  `,
		` \___|  |_|  |___/|___||_|_\    \__/ |___|  |_|  `,
	}
	pausedArt = []string{
		` ___   _   _   _  ___  ___  ___  `,
		`| _ \ /_\ | | | |/ __|| __||   \ `,
		`|  _// _ \| |_| |\__ \| _| | |) |`,
		`|_| /_/ \_\\___/ |___/|___||___/ `,
	}
	gameOverArt = []string{
		`  ___   _   __  __  ___    ___  __   __ ___  ___  `,
		` / __| /_\ |  \/  || __|  / _ \ \ \ / /| __|| _ \ `,
		`| (_ |/ _ \| |\/| || _|  | (_) | \ V / | _| |   / `,
		` \___/_/ \_\_|  |_||___|  \___/   \_/  |___||_|_\ `,
	}
)

var (
	styleTitle  = draw.ColorBold + draw.Foreground(draw.ColorMagenta)
	styleAccent = draw.ColorBrightCyan
	styleDim    = draw.Foreground(draw.ColorGray)
	styleWarn   = draw.ColorBold + draw.Foreground(draw.ColorOrange)
)

// healthBarWidth is the health gauge width in columns.
const healthBarWidth = 20

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On screen or inactivity transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	key := screenKey{phase: c.state.Phase, state: c.game.State(), inactive: c.state.isInactive}
	if !c.state.hasPrevScreen || key != c.state.prevScreen {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevScreen = key
		c.state.hasPrevScreen = true
	}

	c.canvas.Clear()

	snapshot := c.game.Snapshot()
	hub := c.server.GetSnapshot()

	if c.state.Phase == PhaseGame && snapshot.State != loop.StateMenu {
		snapshot.Draw(object.DrawContext{Canvas: c.canvas})
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(&snapshot, hub)

	return c.chunkWriter.Flush()
}

// drawUI draws the text overlay for the current screen.
func (c *Client) drawUI(snapshot *loop.Snapshot, hub *server.HubSnapshot) {
	centerY := c.canvas.TerminalHeight() / 2

	if c.state.Phase == PhaseShutdown {
		c.drawShutdownScreen(centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerY)
		return
	}

	if c.state.Phase == PhaseIntro {
		c.drawIntroScreen(centerY)
		return
	}

	switch snapshot.State {
	case loop.StateMenu:
		c.drawMenuScreen(centerY, hub)
	case loop.StateRunning:
		c.drawPlayingHUD(snapshot, hub)
	case loop.StatePaused:
		c.drawPlayingHUD(snapshot, hub)
		c.drawPausedScreen(centerY)
	case loop.StateGameOver:
		c.drawGameOverScreen(centerY, snapshot)
	}
}

// text draws a line centered on the canvas.
func (c *Client) text(value string, row int, style string) {
	object.Centered(value, c.canvas.TerminalWidth(), row, style).Draw(c.chunkWriter, c.canvas)
}

// textAt draws a line at a fixed column.
func (c *Client) textAt(col, row int, value, style string) {
	object.Text{Col: col, Row: row, Value: value, Style: style}.Draw(c.chunkWriter, c.canvas)
}

// art draws a block of lines centered as a whole and returns the row below it.
func (c *Client) art(lines []string, row int, style string) int {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	col := (c.canvas.TerminalWidth()-width)/2 + 1
	for i, line := range lines {
		c.textAt(col, row+i, line, style)
	}
	return row + len(lines)
}

// blinkOn reports whether blinking prompts are visible this frame.
func blinkOn() bool {
	return time.Now().UnixMilli()/600%2 == 0
}

// drawIntroScreen draws the title card.
func (c *Client) drawIntroScreen(centerY int) {
	row := c.art(titleArt, centerY-3, styleTitle)
	c.text("~ Arcade shooter over SSH ~", row+1, styleAccent)
	c.text("Press any key", row+3, styleDim)
}

// drawMenuScreen draws the menu with controls and the leaderboard.
func (c *Client) drawMenuScreen(centerY int, hub *server.HubSnapshot) {
	row := c.art(titleArt, centerY-10, styleTitle)

	controlsY := row + 2
	c.text("Controls", controlsY, draw.ColorBold)
	controlLines := []string{
		"W A S D / Arrows  . . Move ",
		"SPACE  . . . . . . .  Shoot",
		"P  . . . . . . . . .  Pause",
		"M / ESC  . . . . . .   Menu",
		"Q  . . . . . . . . .   Quit",
	}
	for i, line := range controlLines {
		c.text(line, controlsY+1+i, "")
	}

	promptY := controlsY + len(controlLines) + 2
	if blinkOn() {
		c.text(">>  Press ENTER to Start  <<", promptY, styleAccent)
	}

	c.drawTopScores(promptY+2, hub)
}

// drawTopScores draws the leaderboard starting at row.
func (c *Client) drawTopScores(row int, hub *server.HubSnapshot) {
	if hub == nil || len(hub.TopScores) == 0 {
		return
	}
	c.text("Top Scores", row, draw.ColorBold)
	for i, entry := range hub.TopScores {
		line := fmt.Sprintf("%d. %-*s %8d", i+1, config.MaxUsernameLength, entry.Username, entry.Score)
		c.text(line, row+1+i, "")
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen (since we don't clear every frame).
func (c *Client) drawPlayingHUD(snapshot *loop.Snapshot, hub *server.HubSnapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	s := snapshot.Session

	c.textAt(2, 1, fmt.Sprintf("Score: %-8d", s.Score), draw.Foreground(draw.ColorWhite))
	c.textAt(2, 2, fmt.Sprintf("High:  %-8d", s.HighScore), styleDim)

	levelText := fmt.Sprintf("Level: %-3d", s.Level)
	c.textAt(termWidth-len(levelText)-1, 1, levelText, "")

	ammoText := fmt.Sprintf("Ammo: %-12d", s.Ammo)
	ammoStyle := ""
	if s.Reloading {
		ammoText = fmt.Sprintf("%-18s", "Reloading...")
		ammoStyle = styleWarn
	}
	c.textAt(2, termHeight, ammoText, ammoStyle)

	health := fmt.Sprintf("HP %s %3d", draw.Bar(healthBarWidth, float64(s.Health)), s.Health)
	c.text(health, 1, draw.Foreground(healthColor(s.Health)))

	if hub != nil {
		playersText := fmt.Sprintf("Players: %-4d", hub.Players)
		c.textAt(termWidth-len(playersText)-1, termHeight, playersText, styleDim)
	}
}

// healthColor picks the gauge color for the remaining health.
func healthColor(health int) draw.Color {
	switch {
	case health > config.HealthHigh:
		return draw.ColorCyan
	case health > config.HealthMid:
		return draw.ColorBlue
	default:
		return draw.ColorDarkBlue
	}
}

// drawPausedScreen draws the pause overlay.
func (c *Client) drawPausedScreen(centerY int) {
	row := c.art(pausedArt, centerY-3, styleAccent)
	c.text("P to resume  .  M for menu", row+1, "")
}

// drawGameOverScreen draws the game over screen.
func (c *Client) drawGameOverScreen(centerY int, snapshot *loop.Snapshot) {
	row := c.art(gameOverArt, centerY-6, styleTitle)
	s := snapshot.Session

	c.text(fmt.Sprintf("Score: %d", s.Score), row+1, draw.ColorBold)
	c.text(fmt.Sprintf("Level: %d   High score: %d", s.Level, s.HighScore), row+2, "")

	if c.state.lastRank > 0 {
		c.text(fmt.Sprintf("New top score! Rank #%d", c.state.lastRank), row+4, styleAccent)
	}

	if blinkOn() {
		c.text(">>  Press R to Restart  <<", row+6, styleAccent)
	}
	c.text("ENTER new game  .  M menu  .  Q quit", row+8, styleDim)
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerY int) {
	c.text("INACTIVITY WARNING", centerY-2, draw.ColorBold+draw.Foreground(draw.ColorRed))

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	c.text(msg, centerY, "")
	c.text("Press any key to continue", centerY+2, styleDim)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerY int) {
	c.text("SERVER SHUTTING DOWN", centerY-3, styleWarn)
	c.text("The server is restarting for maintenance.", centerY-1, "")
	c.text("Please reconnect in a moment.", centerY, "")

	remaining := int(c.state.shutdownTimer) + 1
	c.text(fmt.Sprintf("Disconnecting in %d seconds...", remaining), centerY+2, "")
	c.text("Press Q to disconnect now", centerY+4, styleDim)
}
