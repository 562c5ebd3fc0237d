package main

import (
	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/spf13/cobra"
)

func (c *cli) sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Work with collaborative coding sessions",
	}

	var req models.CreateSessionRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Start a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.legacy {
				return printJSON(cmd.OutOrStdout(), c.shim.CreateCollaborativeSession(cmd.Context(), &req))
			}
			session, err := c.client.Sessions.Create(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), session)
		},
	}
	create.Flags().StringVar(&req.SessionID, "id", "", "session id (generated by the server when empty)")
	create.Flags().StringVar(&req.CreatorID, "creator", "", "creator user id")
	create.Flags().StringVar(&req.Title, "title", "", "session title")
	create.Flags().StringVar(&req.Language, "language", "", "programming language")

	get := &cobra.Command{
		Use:   "get SESSION_ID",
		Short: "Show a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.legacy {
				return printJSON(cmd.OutOrStdout(), c.shim.GetCollaborativeSession(cmd.Context(), args[0]))
			}
			session, err := c.client.Sessions.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), session)
		},
	}

	var userID, userName string
	join := &cobra.Command{
		Use:   "join SESSION_ID",
		Short: "Join a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.legacy {
				return printJSON(cmd.OutOrStdout(), c.shim.JoinSession(cmd.Context(), args[0], userID, userName))
			}
			p, err := c.client.Participants.Join(cmd.Context(), args[0], &models.Participant{UserID: userID, UserName: userName})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	join.Flags().StringVar(&userID, "user", "", "user id")
	join.Flags().StringVar(&userName, "name", "", "display name")

	participants := &cobra.Command{
		Use:   "participants SESSION_ID",
		Short: "List session participants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.legacy {
				return printJSON(cmd.OutOrStdout(), c.shim.GetSessionParticipants(cmd.Context(), args[0]))
			}
			list, err := c.client.Participants.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), list)
		},
	}

	messages := &cobra.Command{
		Use:   "messages SESSION_ID",
		Short: "Show the session chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.legacy {
				return printJSON(cmd.OutOrStdout(), c.shim.GetChatMessages(cmd.Context(), args[0]))
			}
			list, err := c.client.Messages.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), list)
		},
	}

	var text string
	send := &cobra.Command{
		Use:   "send SESSION_ID",
		Short: "Post a chat message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.legacy {
				return printJSON(cmd.OutOrStdout(), c.shim.SendChatMessage(cmd.Context(), args[0], userID, userName, text))
			}
			m, err := c.client.Messages.Send(cmd.Context(), args[0], &models.ChatMessage{UserID: userID, UserName: userName, Message: text})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), m)
		},
	}
	send.Flags().StringVar(&userID, "user", "", "user id")
	send.Flags().StringVar(&userName, "name", "", "display name")
	send.Flags().StringVarP(&text, "message", "m", "", "message text")

	cmd.AddCommand(create, get, join, participants, messages, send)
	return cmd
}
