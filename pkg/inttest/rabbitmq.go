package inttest

import (
	"context"
	"fmt"
	"testing"

	"github.com/docker/go-connections/nat"
	amqpgo "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const amqpPort = "5672"
const natAMQPPort = amqpPort + "/tcp"

// SetupRabbitMQAMQP creates a RabbitMQ container with an AMQP connection and channel ready to send
// messages to it. We are using the management image so you can debug and interact with tests using
// its admin panel.
func SetupRabbitMQAMQP(t *testing.T) *AMQP {
	t.Helper()
	require := require.New(t)
	ctx := context.TODO()

	rabbitMQContainer, err := NewRabbitMQ(ctx)
	require.NoError(err, "failed setting up RabbitMQ")
	t.Cleanup(func() {
		require.NoError(rabbitMQContainer.Terminate(ctx), "failed to terminate RabbitMQ")
	})

	URI, err := rabbitMQContainer.AMQPURI(ctx)
	require.NoError(err, "failed to get RabbitMQ AMQP URI")
	conn, err := amqpgo.Dial(URI)
	require.NoError(err, "failed setting up AMQP connection")
	t.Cleanup(func() {
		require.NoError(conn.Close(), "failed to close AMQP connection")
	})
	channel, err := conn.Channel()
	require.NoError(err, "failed setting up AMQP channel")

	return &AMQP{
		rabbitMQContainer: rabbitMQContainer,
		Conn:              conn,
		Channel:           channel,
	}
}

// AMQP allows making requests to RabbitMQ. It does so by opening a connection and channel to
// RabbitMQ via the low-level github.com/rabbitmq/amqp091-go library.
type AMQP struct {
	rabbitMQContainer *rabbitmqContainer
	Conn              *amqpgo.Connection // Connection established with RabbitMQ
	Channel           *amqpgo.Channel    // Channel established with RabbitMQ
}

// URI is the AMQP URI going to RabbitMQ.
func (a *AMQP) URI(t *testing.T) string {
	t.Helper()

	URI, err := a.rabbitMQContainer.AMQPURI(context.TODO())
	require.NoError(t, err, "failed to get RabbitMQ URI")
	return URI
}

type rabbitmqContainer struct {
	testcontainers.Container
	user string
	pw   string
}

func (rc *rabbitmqContainer) AMQPURI(ctx context.Context) (string, error) {
	ip, err := rc.Host(ctx)
	if err != nil {
		return "", err
	}
	port, err := rc.MappedPort(ctx, nat.Port(natAMQPPort))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%s", rc.user, rc.pw, ip, port.Port()), nil
}

// NewRabbitMQ creates a RabbitMQ container. The container will be listening and ready to accept
// connections using the default guest credentials.
func NewRabbitMQ(ctx context.Context) (*rabbitmqContainer, error) {
	user := "guest"
	pw := "guest"
	req := testcontainers.ContainerRequest{
		Image: "bitnami/rabbitmq:3.13",
		Env: map[string]string{
			"RABBITMQ_USERNAME":                    user,
			"RABBITMQ_PASSWORD":                    pw,
			"RABBITMQ_MANAGEMENT_ALLOW_WEB_ACCESS": "true",
			"RABBITMQ_DISK_FREE_ABSOLUTE_LIMIT":    "100MB",
		},
		ExposedPorts: []string{natAMQPPort, "15672/tcp"},
		WaitingFor:   wait.ForLog("Time to start RabbitMQ").WithOccurrence(2),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, err
	}

	return &rabbitmqContainer{
		Container: container,
		user:      user,
		pw:        pw,
	}, nil
}
