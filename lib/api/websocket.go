package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

const statsInterval = 2 * time.Second

func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade has already replied
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			log("could not close websocket: %s", err)
		}
	}(ws)
	a.addClient(ws)
	defer a.removeClient(ws)

	go a.websocketWriter(ws)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}
		log("received: %s", msg)
	}
}

func (a *Api) addClient(ws *websocket.Conn) {
	a.wsClientsMu.Lock()
	defer a.wsClientsMu.Unlock()
	a.wsClients[ws] = true
	a.Stats.SetWsClients(len(a.wsClients))
}

func (a *Api) removeClient(ws *websocket.Conn) {
	a.wsClientsMu.Lock()
	defer a.wsClientsMu.Unlock()
	delete(a.wsClients, ws)
	a.Stats.SetWsClients(len(a.wsClients))
}

// websocketWriter pushes a stats snapshot immediately and then every
// statsInterval until the connection breaks.
func (a *Api) websocketWriter(ws *websocket.Conn) {
	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()

	timeout := 10 * time.Second
	for {
		packet, err := json.Marshal(a.Stats.Snapshot())
		if err != nil {
			return
		}
		err = ws.SetWriteDeadline(time.Now().Add(timeout))
		if err != nil {
			log("could not set write deadline: %s", err)
			return
		}
		if err := ws.WriteMessage(websocket.TextMessage, packet); err != nil {
			return
		}
		<-ticker.C
	}
}
