package bootloader

import (
	"fmt"
	"io"
	"time"

	"github.com/robbym/psoc-bootloader/cyacd"
	"github.com/robbym/psoc-bootloader/protocol"
)

// Session drives one firmware bootload over one connection. It sequences
// the protocol commands to enter bootloader mode, stream and verify each
// flash row, and exit.
//
// A session is single-use and fully synchronous: every exchange blocks
// until the transport completes or fails, rows are programmed in image
// order, and exactly one session may use a connection at a time.
type Session struct {
	conn   Connection
	codec  *protocol.Codec
	config Config
	phase  Phase
}

// NewSession returns a Session over conn configured with opts.
func NewSession(conn Connection, opts ...Option) *Session {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session{
		conn:   conn,
		codec:  protocol.NewCodec(conn),
		config: cfg,
		phase:  PhaseIdle,
	}
}

// Bootload runs a complete bootload of the .cyacd image on r over the
// session's connection, as a convenience for the common case.
func Bootload(r io.Reader, conn Connection, opts ...Option) error {
	return NewSession(conn, opts...).Bootload(r)
}

// Phase returns the current sequence stage.
func (s *Session) Phase() Phase {
	return s.phase
}

// Bootload performs the full sequence:
//
//  1. Open the connection (failure is fatal, nothing else runs)
//  2. Parse the image header
//  3. Enter Bootloader (response expected)
//  4. For each row: program then verify, in image order
//  5. On clean end of image: Exit Bootloader (no response) and close
//
// Any failure aborts immediately and is returned as-is. Only the clean
// end-of-image path sends Exit Bootloader and closes the connection; on
// every other path connection teardown is left to the caller.
func (s *Session) Bootload(image io.Reader) error {
	start := time.Now()
	parser := cyacd.NewParser(image)

	if err := s.conn.Open(); err != nil {
		return protocol.DeviceError("open connection", err)
	}
	s.phase = PhaseOpened
	s.logDebug("connection opened")

	header, err := parser.Header()
	if err != nil {
		return err
	}
	s.logDebug("image header parsed",
		"silicon_id", fmt.Sprintf("0x%08X", header.SiliconID),
		"silicon_rev", fmt.Sprintf("0x%02X", header.SiliconRev),
		"checksum_type", header.Checksum.String(),
	)

	info, err := s.EnterBootloader()
	if err != nil {
		return fmt.Errorf("enter bootloader: %w", err)
	}
	s.phase = PhaseEntered
	s.report(Progress{Phase: PhaseEntered, Elapsed: time.Since(start)})

	if s.config.CheckSiliconID && info != nil && info.SiliconID != header.SiliconID {
		return &DeviceMismatchError{Expected: header.SiliconID, Actual: info.SiliconID}
	}

	rows := 0
	bytes := 0
	for {
		row, err := parser.NextRow()
		if err != nil {
			if protocol.IsEOF(err) {
				break
			}
			return err
		}

		if s.config.VerifyRowChecksums && !row.ChecksumValid() {
			return &protocol.HostError{
				Kind: protocol.KindChecksum,
				Msg:  fmt.Sprintf("row checksum invalid: array %d, row %d", row.ArrayID, row.RowNum),
			}
		}

		s.phase = PhaseProgramming
		if err := s.ProgramRow(row); err != nil {
			return fmt.Errorf("program row (array=%d, row=%d): %w", row.ArrayID, row.RowNum, err)
		}

		s.phase = PhaseVerifying
		if err := s.VerifyRow(row); err != nil {
			return fmt.Errorf("verify row (array=%d, row=%d): %w", row.ArrayID, row.RowNum, err)
		}

		rows++
		bytes += len(row.Data)
		s.report(Progress{
			Phase:   PhaseVerifying,
			Rows:    rows,
			Bytes:   bytes,
			ArrayID: row.ArrayID,
			RowNum:  row.RowNum,
			Elapsed: time.Since(start),
		})
	}

	if err := s.ExitBootloader(); err != nil {
		return fmt.Errorf("exit bootloader: %w", err)
	}
	s.phase = PhaseExited

	if err := s.conn.Close(); err != nil {
		return protocol.DeviceError("close connection", err)
	}
	s.phase = PhaseClosed
	s.report(Progress{Phase: PhaseClosed, Rows: rows, Bytes: bytes, Elapsed: time.Since(start)})

	s.logInfo("bootload complete",
		"rows", rows,
		"bytes", bytes,
		"elapsed", time.Since(start).String(),
	)

	return nil
}

// EnterBootloader sends the Enter Bootloader command. When the device
// replies with a full device info payload it is decoded and returned;
// shorter payloads (some bootloaders return flash geometry or nothing)
// are accepted and yield a nil DeviceInfo.
func (s *Session) EnterBootloader() (*protocol.DeviceInfo, error) {
	data, err := s.codec.Transmit(protocol.BuildPacket(protocol.CmdEnterBootloader, nil), true)
	if err != nil {
		return nil, err
	}

	if len(data) != protocol.DeviceInfoSize {
		return nil, nil
	}
	return protocol.ParseDeviceInfo(data)
}

// ExitBootloader sends the Exit Bootloader command without awaiting a
// response; the device resets into the application and never replies.
func (s *Session) ExitBootloader() error {
	_, err := s.codec.Transmit(protocol.BuildPacket(protocol.CmdExitBootloader, nil), false)
	return err
}

// ProgramRow programs one flash row. Rows larger than the per-packet
// limit are streamed as Send Data chunks first; the final Program Row
// packet carries the flash address and the remaining tail.
func (s *Session) ProgramRow(row *cyacd.Row) error {
	data := row.Data
	for len(data) > protocol.MaxChunkSize {
		chunk := protocol.BuildPacket(protocol.CmdSendData, data[:protocol.MaxChunkSize])
		if _, err := s.codec.Transmit(chunk, true); err != nil {
			return fmt.Errorf("send data chunk: %w", err)
		}
		data = data[protocol.MaxChunkSize:]
	}

	payload := make([]byte, 0, 3+len(data))
	payload = append(payload, row.ArrayID, byte(row.RowNum), byte(row.RowNum>>8))
	payload = append(payload, data...)

	_, err := s.codec.Transmit(protocol.BuildPacket(protocol.CmdProgramRow, payload), true)
	return err
}

// VerifyRow asks the device to verify one programmed row. A non-success
// status aborts the session; the returned checksum payload is accepted
// but not interpreted here.
func (s *Session) VerifyRow(row *cyacd.Row) error {
	payload := []byte{row.ArrayID, byte(row.RowNum), byte(row.RowNum >> 8)}
	_, err := s.codec.Transmit(protocol.BuildPacket(protocol.CmdVerifyRow, payload), true)
	return err
}

// GetFlashSize queries the valid flash row range for the given array.
func (s *Session) GetFlashSize(arrayID byte) (*protocol.FlashSize, error) {
	data, err := s.codec.Transmit(protocol.BuildPacket(protocol.CmdGetFlashSize, []byte{arrayID}), true)
	if err != nil {
		return nil, fmt.Errorf("get flash size: %w", err)
	}
	return protocol.ParseFlashSize(data)
}

// VerifyApplicationChecksum asks the device to verify the checksum of the
// whole bootloadable application.
func (s *Session) VerifyApplicationChecksum() (bool, error) {
	data, err := s.codec.Transmit(protocol.BuildPacket(protocol.CmdVerifyChecksum, nil), true)
	if err != nil {
		return false, fmt.Errorf("verify application checksum: %w", err)
	}
	return protocol.ParseChecksumValid(data)
}

// EraseRow erases one flash row.
func (s *Session) EraseRow(arrayID byte, rowNum uint16) error {
	payload := []byte{arrayID, byte(rowNum), byte(rowNum >> 8)}
	_, err := s.codec.Transmit(protocol.BuildPacket(protocol.CmdEraseRow, payload), true)
	if err != nil {
		return fmt.Errorf("erase row: %w", err)
	}
	return nil
}

// Sync resets the bootloader to a clean state, discarding buffered data.
// Only needed when host and device get out of step.
func (s *Session) Sync() error {
	_, err := s.codec.Transmit(protocol.BuildPacket(protocol.CmdSync, nil), true)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	return nil
}

// SetActiveApp marks the given application as active (multi-app only).
func (s *Session) SetActiveApp(appNum byte) error {
	_, err := s.codec.Transmit(protocol.BuildPacket(protocol.CmdSetActiveApp, []byte{appNum}), true)
	if err != nil {
		return fmt.Errorf("set active app: %w", err)
	}
	return nil
}

// GetAppStatus queries the validity/activity of an application (multi-app only).
func (s *Session) GetAppStatus(appNum byte) (*protocol.AppStatus, error) {
	data, err := s.codec.Transmit(protocol.BuildPacket(protocol.CmdGetAppStatus, []byte{appNum}), true)
	if err != nil {
		return nil, fmt.Errorf("get app status: %w", err)
	}
	return protocol.ParseAppStatus(data)
}

// GetMetadata reads the application metadata block.
func (s *Session) GetMetadata(appNum byte) (*protocol.Metadata, error) {
	data, err := s.codec.Transmit(protocol.BuildPacket(protocol.CmdGetMetadata, []byte{appNum}), true)
	if err != nil {
		return nil, fmt.Errorf("get metadata: %w", err)
	}
	return protocol.ParseMetadata(data)
}

func (s *Session) report(p Progress) {
	if s.config.Progress != nil {
		s.config.Progress(p)
	}
}

func (s *Session) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (s *Session) logInfo(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Info(msg, keysAndValues...)
	}
}
