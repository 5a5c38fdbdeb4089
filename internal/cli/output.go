package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Claims:
		o.printClaims(v)
	case AuthResult:
		o.printAuthResult(v)
	case PlayerList:
		o.printPlayerList(v)
	case PlayerDetail:
		o.printPlayerDetail(v)
	case StatusResult:
		o.printStatusResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Claims response type (matches API)
type Claims struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthResult combines the token and the authenticated user
type AuthResult struct {
	Token string `json:"token"`
	User  Claims `json:"user"`
}

// PlayerListItem is one row of the paginated list
type PlayerListItem struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Level          int        `json:"level"`
	LastConnection *time.Time `json:"last_connection"`
	Details        string     `json:"details"`
}

// PlayerList is the paginated list response
type PlayerList struct {
	PerPage      int              `json:"per_page"`
	Page         int              `json:"page"`
	OrderBy      []string         `json:"order_by"`
	PlayerTotal  int              `json:"player_total"`
	PageCount    int              `json:"page_count"`
	NextPage     string           `json:"next_page"`
	PreviousPage string           `json:"previous_page"`
	Players      []PlayerListItem `json:"players"`
}

// PlayerDetail is the full player record response
type PlayerDetail struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Level          int        `json:"level"`
	Platform       string     `json:"platform"`
	LastConnection *time.Time `json:"last_connection"`
	ProfilePic     string     `json:"profile_pic"`
	Details        string     `json:"details"`
}

// StatusResult is a bare confirmation response
type StatusResult struct {
	Status string `json:"status"`
}

func (o *Output) printClaims(c Claims) {
	fmt.Printf("User: %s (#%d)\n", c.Username, c.ID)
	fmt.Printf("Role: %s\n", c.Role)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printClaims(a.User)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printPlayerList(l PlayerList) {
	fmt.Printf("Players: %d total, page %d/%d (ordered by %s)\n",
		l.PlayerTotal, l.Page, l.PageCount, strings.Join(l.OrderBy, ", "))

	fmt.Printf("%-6s %-20s %-6s %s\n", "ID", "USERNAME", "LEVEL", "LAST CONNECTION")
	for _, p := range l.Players {
		fmt.Printf("%-6d %-20s %-6d %s\n", p.ID, p.Username, p.Level, formatDate(p.LastConnection))
	}

	if l.NextPage != "" {
		fmt.Printf("Next: %s\n", l.NextPage)
	}
}

func (o *Output) printPlayerDetail(p PlayerDetail) {
	fmt.Printf("Player: %s (#%d)\n", p.Username, p.ID)
	fmt.Printf("Email: %s\n", p.Email)
	fmt.Printf("Level: %d\n", p.Level)
	if p.Platform != "" {
		fmt.Printf("Platform: %s\n", p.Platform)
	}
	fmt.Printf("Last Connection: %s\n", formatDate(p.LastConnection))
	if p.ProfilePic != "" {
		fmt.Printf("Picture: %s\n", p.ProfilePic)
	}
}

func (o *Output) printStatusResult(s StatusResult) {
	fmt.Printf("Status: %s\n", s.Status)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}
