// Command remi runs either the Remi server or a terminal client/bot
// that connects to one.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/ssveto/remi-backend/bot"
	"github.com/ssveto/remi-backend/client"
	"github.com/ssveto/remi-backend/server"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	switch cmd := os.Args[1]; cmd {
	case "server":
		server.New(port).Start()

	case "create":
		address := fmt.Sprintf("localhost:%s", port)
		if len(os.Args) >= 3 {
			address = os.Args[2]
		}
		code, err := createRoom(address)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(code)

	case "player":
		if len(os.Args) < 4 {
			usage()
		}
		roomCode, playerID := os.Args[2], os.Args[3]
		address := fmt.Sprintf("localhost:%s", port)
		if len(os.Args) >= 5 {
			address = os.Args[4]
		}
		if err := joinRoom(address, roomCode, playerID); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := client.Player(address, roomCode, playerID); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

	case "bot":
		if len(os.Args) < 4 {
			usage()
		}
		roomCode, playerID := os.Args[2], os.Args[3]
		address := fmt.Sprintf("localhost:%s", port)
		if len(os.Args) >= 5 {
			address = os.Args[4]
		}
		if err := joinRoom(address, roomCode, playerID); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := runBot(address, roomCode, playerID); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

	default:
		usage()
	}
}

func createRoom(address string) (string, error) {
	resp, err := http.Post(fmt.Sprintf("http://%s/rooms", address), "application/json", bytes.NewReader([]byte("{}")))
	if err != nil {
		return "", fmt.Errorf("creating room: %w", err)
	}
	defer resp.Body.Close()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding room response: %w", err)
	}
	return body.Code, nil
}

func joinRoom(address, roomCode, playerID string) error {
	body, _ := json.Marshal(struct {
		PlayerID    string `json:"playerId"`
		DisplayName string `json:"displayName"`
	}{PlayerID: playerID, DisplayName: playerID})

	resp, err := http.Post(fmt.Sprintf("http://%s/rooms/%s/join", address, roomCode), "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("joining room: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("joining room: server returned %d", resp.StatusCode)
	}
	return nil
}

func runBot(address, roomCode, playerID string) error {
	conn, err := client.Dial(address, roomCode, playerID)
	if err != nil {
		return err
	}
	defer conn.Close()

	b := bot.New()
	for view := range conn.Views {
		action := b.ChooseAction(view, playerID)
		_ = conn.SendAction(action)
	}
	return nil
}

func usage() {
	fmt.Println("usage: remi server")
	fmt.Println("usage: remi create [address]")
	fmt.Println("usage: remi player <roomCode> <playerId> [address]")
	fmt.Println("usage: remi bot <roomCode> <playerId> [address]")
	fmt.Println("Define the PORT environment variable to change the default port (8080).")
	os.Exit(1)
}
