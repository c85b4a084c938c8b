package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/LeGarbage/battleshipy/pkg/console"
	"github.com/LeGarbage/battleshipy/pkg/game"
	"github.com/LeGarbage/battleshipy/pkg/protocol"
	"github.com/LeGarbage/battleshipy/pkg/session"
)

var addr = flag.String("addr", "localhost:8080", "http service address")

func main() {
	flag.Parse()
	log.SetFlags(0)

	u := url.URL{Scheme: "ws", Host: *addr, Path: "/ws"}
	log.Printf("connecting to %s", u.String())

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal("dial:", err)
	}

	if err := play(conn); err != nil {
		log.Fatal(err)
	}
}

func play(conn *websocket.Conn) error {
	defer conn.Close()
	conn.SetReadLimit(protocol.MaxMessageSize)
	fmt.Println("Connected to server!")

	g := game.New(game.StandardCatalog)
	cons := console.New()
	s := session.New("", conn, g, cons, cons)

	// Wait for the server's ready signal before starting.
	if err := s.Handshake(session.RoleConnector); err != nil {
		return err
	}

	if err := g.PlaceFleet(rand.New(rand.NewSource(time.Now().UnixNano()))); err != nil {
		return err
	}
	fmt.Println("\nGame Started! All ships have been placed.")

	err := s.Run(session.RoleConnector)
	if errors.Is(err, session.ErrPeerDisconnected) {
		return fmt.Errorf("game aborted: %w", err)
	}
	if err != nil {
		return err
	}

	if g.Won() {
		fmt.Println("Congratulations, you win!")
	} else {
		fmt.Println("Defeat!")
	}
	return nil
}
