package detector

import (
	"YogaPoseAPI/internal/entity"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// IDetector is the bridge to the external pose-estimation service. The
// engine never talks to it directly; only the frame-scoring paths do.
type IDetector interface {
	ProcessPoseFrame(frame []byte) (*entity.KeypointDetectionResult, error)
	IsConnected() bool
	Reconnect() error
	CloseConnection()
}

type detectorClient struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewPoseDetectorClient() IDetector {
	client := &detectorClient{
		pingInterval: 30 * time.Second,
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go func() {
		if err := client.Reconnect(); err != nil {
			log.Printf("Initial connection to pose detector failed: %v. Will retry on demand.", err)
		} else {
			log.Printf("Successfully connected to pose detector service")
		}
	}()

	return client
}

func (c *detectorClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn != nil
}

func (c *detectorClient) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}

	url := os.Getenv("POSE_DETECTOR_URL")
	if url == "" {
		url = "ws://localhost:8000/api/v1/pose/ws"
	}

	log.Printf("Connecting to pose detector at %s", url)

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
		if err != nil {
			log.Printf("Error sending pong: %v", err)
		}
		return nil
	})

	c.conn = conn

	go c.keepAlive()

	return nil
}

func (c *detectorClient) CloseConnection() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

func (c *detectorClient) keepAlive() {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		conn := c.conn
		if conn == nil {
			c.mu.Unlock()
			return
		}

		err := conn.WriteControl(
			websocket.PingMessage,
			[]byte{},
			time.Now().Add(c.writeTimeout),
		)
		if err != nil {
			log.Printf("Ping failed for pose detector, marking connection as dead: %v", err)
			c.conn = nil
			conn.Close()
			c.mu.Unlock()
			return
		}

		c.mu.Unlock()
	}
}

func (c *detectorClient) getConnection() (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, fmt.Errorf("not connected to pose detector service")
	}

	return c.conn, nil
}

// ProcessPoseFrame sends one camera frame to the detector and waits for the
// keypoint snapshot it extracts. One in-flight frame per connection.
func (c *detectorClient) ProcessPoseFrame(frame []byte) (*entity.KeypointDetectionResult, error) {
	conn, err := c.getConnection()
	if err != nil {
		if err := c.Reconnect(); err != nil {
			return nil, fmt.Errorf("cannot connect to pose detector service: %w", err)
		}
		conn, err = c.getConnection()
		if err != nil {
			return nil, err
		}
	}

	c.mu.Lock()

	conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))

	log.Printf("Sending pose frame of size: %d bytes", len(frame))
	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		c.conn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error sending pose frame: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(c.readTimeout))

	c.mu.Unlock()

	_, message, err := conn.ReadMessage()
	if err != nil {
		c.mu.Lock()
		c.conn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error reading detector message: %w", err)
	}

	c.mu.Lock()
	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})
	c.mu.Unlock()

	var result entity.KeypointDetectionResult
	if err := json.Unmarshal(message, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling detector response: %w", err)
	}

	log.Printf("Pose Detection Result: Status=%s, keypoints=%d", result.Status, len(result.Keypoints))

	return &result, nil
}
