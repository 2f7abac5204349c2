//go:build gcloud

package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/medremind/reminder-engine/internal/observability/tracing"
)

// CloudTasksChannel hands the notification to a Cloud Tasks queue whose target
// is the push-delivery service. Used on the gcloud platform, where in-process
// timers do not survive instance recycling.
type CloudTasksChannel struct {
	client     *cloudtasks.Client
	projectID  string
	locationID string
	queueID    string
	targetURL  string
}

// Task names allow only letters, digits, hyphens and underscores.
var taskNameReplacer = strings.NewReplacer(":", "-", ".", "_")

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
}

func NewCloudTasksChannel(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksChannel, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	return &CloudTasksChannel{
		client:     client,
		projectID:  cfg.ProjectID,
		locationID: cfg.LocationID,
		queueID:    cfg.QueueID,
		targetURL:  cfg.TargetURL,
	}, nil
}

func (c *CloudTasksChannel) Notify(ctx context.Context, n *Notification) error {
	ctx, span := tracing.StartNotifySpan(ctx, "cloud_tasks")
	defer span.End()

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	queuePath := fmt.Sprintf("projects/%s/locations/%s/queues/%s",
		c.projectID, c.locationID, c.queueID)

	task := &taskspb.Task{
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        c.targetURL,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
				Body: payload,
			},
		},
	}

	// A named task lets Cloud Tasks reject re-enqueues of the same reminder.
	if n.DedupKey != "" {
		task.Name = queuePath + "/tasks/" + taskNameReplacer.Replace(n.DedupKey)
	}
	if n.ScheduledAt.After(time.Now()) {
		task.ScheduleTime = timestamppb.New(n.ScheduledAt)
	}

	req := &taskspb.CreateTaskRequest{
		Parent: queuePath,
		Task:   task,
	}

	if _, err := c.client.CreateTask(ctx, req); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			slog.DebugContext(ctx, "notification task already enqueued",
				slog.String("user_id", n.UserID),
			)
			return nil
		}
		return fmt.Errorf("failed to create notification task: %w", err)
	}

	return nil
}

func (c *CloudTasksChannel) Close() error {
	return c.client.Close()
}
