package schema

import "github.com/heartmarshall/netscheme-backend/internal/domain"

// Connection is the payload of an acquiring or issuing client link.
type Connection struct {
	ClientType          string          `json:"client_type" validate:"required,oneof=acquiring issuing"`
	ConnectionType      string          `json:"connection_type" validate:"required,oneof=client_listener client_connector"`
	ClientNodeID        string          `json:"client_node_id" validate:"required,max=64"`
	ClientPort          int             `json:"client_port" validate:"required,min=1,max=65535"`
	ClientIPAddress     string          `json:"client_ip_address" validate:"required,ip"`
	MTISupported        []string        `json:"mti_supported" validate:"min=1,dive,len=4,numeric"`
	HeartbeatPromptType string          `json:"heartbeat_prompt_type,omitempty"`
	HeartbeatInterval   int             `json:"heartbeat_interval,omitempty" validate:"omitempty,min=1"`
	SwitchNodeID        string          `json:"switch_node_id,omitempty"`
	ISOFormat           string          `json:"iso_format,omitempty"`
	FormatVersion       string          `json:"format_version,omitempty" validate:"omitempty,oneof=1987 1993 2003"`
	EndpointName        string          `json:"endpoint_name,omitempty"`
	TimeoutInterval     int             `json:"timeout_interval,omitempty" validate:"omitempty,min=1"`
	ConnectorNodes      []ConnectorNode `json:"connector_nodes,omitempty" validate:"omitempty,dive"`

	extra domain.Payload
}

// ConnectorNode is one switch-side endpoint of a connection.
type ConnectorNode struct {
	ID        string `json:"id" validate:"required"`
	IPAddress string `json:"ip_address" validate:"required,ip"`
	Port      int    `json:"port" validate:"required,min=1,max=65535"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=active inactive pending error"`
}

// Key returns the client node id, which identifies a connection.
func (c *Connection) Key() string { return c.ClientNodeID }

func (c *Connection) Extra() domain.Payload { return c.extra }

func (c *Connection) setExtra(p domain.Payload) { c.extra = p }
