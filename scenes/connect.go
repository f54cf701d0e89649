package scenes

import (
	"image/color"

	"github.com/automoto/pixelrun/network"
	"github.com/automoto/pixelrun/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ConnectScene asks for a relay address and name, then joins the world
// once the relay has assigned a player id.
type ConnectScene struct {
	sceneChanger SceneChanger
	deps         *Deps
	connectUI    *ui.ConnectUI
	netClient    *network.Client
	shouldGoBack bool
}

func NewConnectScene(sc SceneChanger, deps *Deps) *ConnectScene {
	s := &ConnectScene{sceneChanger: sc, deps: deps}
	s.connectUI = ui.NewConnectUI(
		deps.Codec,
		func(req ui.ConnectRequest) { s.onConnect(req) },
		func() { s.shouldGoBack = true },
	)
	return s
}

func (s *ConnectScene) Update() {
	s.connectUI.Update()

	if s.shouldGoBack {
		if s.netClient != nil {
			s.netClient.Disconnect()
			s.netClient = nil
		}
		s.sceneChanger.ChangeScene(NewMenuScene(s.sceneChanger, s.deps))
		return
	}

	if s.netClient == nil {
		return
	}

	switch s.netClient.State() {
	case network.StateConnected:
		if _, ok := s.netClient.Self(); !ok {
			s.connectUI.SetStatus("Connected, joining...")
			return
		}
		client := s.netClient
		s.netClient = nil
		s.sceneChanger.ChangeScene(NewWorldScene(s.sceneChanger, s.deps, client))

	case network.StateError:
		errMsg := "Connection failed"
		if err := s.netClient.LastError(); err != nil {
			errMsg = err.Error()
		}
		s.connectUI.SetStatus(errMsg)
		s.connectUI.SetConnecting(false)
		s.netClient.Disconnect()
		s.netClient = nil

	case network.StateConnecting:
		s.connectUI.SetStatus("Connecting...")

	case network.StateDisconnected:
		s.connectUI.SetStatus("Disconnected")
		s.connectUI.SetConnecting(false)
		s.netClient = nil
	}
}

func (s *ConnectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.connectUI.UI.Draw(screen)
}

func (s *ConnectScene) onConnect(req ui.ConnectRequest) {
	if s.netClient != nil {
		s.netClient.Disconnect()
	}

	s.connectUI.SetStatus("Connecting...")
	s.connectUI.SetConnecting(true)

	deps := *s.deps
	deps.RelayAddress = req.Address
	deps.Name = req.Name
	deps.Codec = req.Codec
	s.deps = &deps

	s.netClient = network.NewClient()
	s.netClient.Connect(req.Address, req.Name, req.Codec)
}
