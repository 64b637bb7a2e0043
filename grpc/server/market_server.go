package server

import (
	"context"
	"fmt"
	"log/slog"

	"tradepost/auth"
	"tradepost/contract"
	"tradepost/domain"
	"tradepost/domain/event"
	"tradepost/errors"
	grpcsink "tradepost/grpc"
	pb "tradepost/proto/market"
	"tradepost/services"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type MarketServer struct {
	pb.UnimplementedMarketServiceServer
	log                  *slog.Logger
	registry             contract.IRegistry
	negotiation          services.INegotiationService
	chats                services.IChatService
	notifications        services.INotificationService
	connectionBufferSize int
}

func NewMarketServer(log *slog.Logger, registry contract.IRegistry,
	negotiation services.INegotiationService, chats services.IChatService,
	notifications services.INotificationService, connectionBufferSize int) *MarketServer {
	return &MarketServer{
		log:                  log,
		registry:             registry,
		negotiation:          negotiation,
		chats:                chats,
		notifications:        notifications,
		connectionBufferSize: connectionBufferSize,
	}
}

// Connect establishes the long-lived delivery stream. The auth
// interceptor has already resolved the caller's identity; an invalid
// token never reaches this point. Presence registration is
// last-writer-wins, and the superseded stream's deferred unregister
// is a no-op. Blocks until the client disconnects.
func (s *MarketServer) Connect(_ *pb.ConnectRequest, stream pb.MarketService_ConnectServer) error {
	userID, ok := auth.UserIDFromContext(stream.Context())
	if !ok {
		return status.Error(codes.Unauthenticated, "no identity on stream")
	}

	connID := uuid.NewString()
	sink := grpcsink.NewSink(s.log, s.connectionBufferSize)
	s.registry.Register(userID, connID, sink)
	defer s.registry.Unregister(connID)

	// Restore room membership from persisted chats so delivery resumes
	// after a reconnect or a process restart.
	s.chats.RejoinRooms(userID)

	for {
		select {
		case <-stream.Context().Done():
			s.log.Info(fmt.Sprintf("Client %s disconnected", userID))
			return nil
		case evt := <-sink.Events:
			if err := stream.Send(toServerEvent(evt)); err != nil {
				s.log.Error("Failed to push event to stream",
					"user_id", userID,
					"error", err)
				return err
			}
		}
	}
}

func (s *MarketServer) RequestPurchase(ctx context.Context, req *pb.RequestPurchaseRequest) (*pb.RequestPurchaseResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.negotiation.RequestPurchase(ctx, userID, req.GetProductId()); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.RequestPurchaseResponse{}, nil
}

func (s *MarketServer) AcceptRequest(ctx context.Context, req *pb.AcceptRequestRequest) (*pb.AcceptRequestResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	chatID, err := s.negotiation.AcceptRequest(ctx, userID, req.GetBuyerId(), req.GetProductId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AcceptRequestResponse{ChatId: chatID}, nil
}

// SendMessage never surfaces an error for an invalid message; the
// only observable effect of a bad call is that nothing happens.
func (s *MarketServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.chats.SendMessage(ctx, userID, req.GetChatId(), req.GetContent()); err != nil {
		s.log.Debug("Message dropped", "chat_id", req.GetChatId(), "error", err)
	}
	return &pb.SendMessageResponse{}, nil
}

func (s *MarketServer) MarkSold(ctx context.Context, req *pb.MarkSoldRequest) (*pb.MarkSoldResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.negotiation.MarkSold(ctx, userID, req.GetProductId()); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.MarkSoldResponse{}, nil
}

func (s *MarketServer) UpdatePickupStatus(ctx context.Context, req *pb.UpdatePickupStatusRequest) (*pb.UpdatePickupStatusResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	newStatus := domain.PickupStatus(req.GetPickupStatus())
	if err := s.negotiation.UpdatePickupStatus(ctx, userID, req.GetProductId(), newStatus); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.UpdatePickupStatusResponse{}, nil
}

func (s *MarketServer) GetChat(ctx context.Context, req *pb.GetChatRequest) (*pb.GetChatResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	chat, messages, cursor, err := s.chats.GetChat(userID, req.GetChatId(), req.Cursor)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GetChatResponse{
		ChatId:    chat.ID,
		ProductId: chat.ProductID,
		SellerId:  chat.SellerID,
		BuyerId:   chat.BuyerID,
		Messages: lo.Map(messages, func(m domain.Message, _ int) *pb.ChatMessage {
			return &pb.ChatMessage{
				MessageId: m.ID.String(),
				SenderId:  m.SenderID,
				Content:   m.Content,
				CreatedAt: timestamppb.New(m.CreatedAt),
			}
		}),
		Cursor: cursor,
	}, nil
}

func (s *MarketServer) ListNotifications(ctx context.Context, _ *pb.ListNotificationsRequest) (*pb.ListNotificationsResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notifications.List(userID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListNotificationsResponse{
		Notifications: lo.Map(notifications, func(n domain.Notification, _ int) *pb.Notification {
			return &pb.Notification{
				NotificationId: n.ID.String(),
				Content:        n.Content,
				Link:           n.Link,
				IsRead:         n.IsRead,
				CreatedAt:      timestamppb.New(n.CreatedAt),
			}
		}),
	}, nil
}

func (s *MarketServer) MarkNotificationRead(ctx context.Context, req *pb.MarkNotificationReadRequest) (*pb.MarkNotificationReadResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	notificationID, err := uuid.Parse(req.GetNotificationId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid notification id")
	}
	if err := s.notifications.MarkRead(userID, notificationID); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.MarkNotificationReadResponse{}, nil
}

func callerID(ctx context.Context) (string, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "no identity on call")
	}
	return userID, nil
}

func toServerEvent(evt event.DomainEvent) *pb.ServerEvent {
	switch e := evt.(type) {
	case event.RequestSent:
		return &pb.ServerEvent{Event: &pb.ServerEvent_RequestSent{
			RequestSent: &pb.RequestSentEvent{Msg: e.Msg},
		}}
	case event.NewRequest:
		return &pb.ServerEvent{Event: &pb.ServerEvent_NewRequest{
			NewRequest: &pb.NewRequestEvent{
				ProductName:   e.ProductName,
				ProductId:     e.ProductID,
				BuyerUsername: e.BuyerUsername,
				BuyerId:       e.BuyerID,
			},
		}}
	case event.ChatStarted:
		return &pb.ServerEvent{Event: &pb.ServerEvent_ChatStarted{
			ChatStarted: &pb.ChatStartedEvent{ChatId: e.ChatID},
		}}
	case event.NewMessage:
		return &pb.ServerEvent{Event: &pb.ServerEvent_NewMessage{
			NewMessage: &pb.NewMessageEvent{
				MessageId:      e.ID.String(),
				ChatId:         e.ChatID,
				Content:        e.Content,
				CreatedAt:      timestamppb.New(e.At),
				SenderId:       e.SenderID,
				SenderUsername: e.SenderUsername,
			},
		}}
	case event.NotificationPushed:
		return &pb.ServerEvent{Event: &pb.ServerEvent_Notification{
			Notification: &pb.NotificationEvent{
				NotificationId: e.NotificationID.String(),
				Content:        e.Content,
				Link:           e.Link,
				CreatedAt:      timestamppb.New(e.At),
			},
		}}
	default:
		return &pb.ServerEvent{}
	}
}
