package layout

// relayScript is the interaction script embedded in every generated
// document. It relays clicks to the host page via postMessage and renders
// arc menu buttons from UPDATE_BUTTON_CONFIG messages. Menu dismissal on
// click-outside is handled locally so it never waits on a host round-trip.
//
// The script carries no numeric pixel literals: the responsive scaler
// rewrites every "<digits>px" magnitude in the document, and positions
// arriving from the host are already in the scaled coordinate space.
const relayScript = `(function () {
  var HIDE_MS = 180;
  var layer = document.getElementById('menu-layer');
  var activeSlot = -1;
  var clearTimer = null;

  function post(msg) {
    if (window.parent && window.parent !== window) {
      window.parent.postMessage(msg, '*');
    }
  }

  document.addEventListener('click', function (ev) {
    var t = ev.target;
    if (!t || !t.closest) { return; }

    var btn = t.closest('.menu-btn');
    if (btn) {
      post({ type: 'BUTTON_CLICKED', buttonId: btn.getAttribute('data-button-id'), imageIndex: activeSlot });
      hideButtons();
      return;
    }

    var slot = t.closest('.slot');
    if (slot) {
      activeSlot = parseInt(slot.getAttribute('data-slot'), 10);
      post({
        type: 'IMAGE_CLICKED',
        imageIndex: activeSlot,
        x: ev.clientX,
        y: ev.clientY,
        viewportWidth: window.innerWidth,
        viewportHeight: window.innerHeight
      });
      return;
    }

    if (t.closest('[data-role="blurb"]')) {
      post({ type: 'TEXT_CLICKED' });
      return;
    }

    hideButtons(); // click outside menu and triggers dismisses locally
  });

  function hideButtons() {
    var btns = layer.querySelectorAll('.menu-btn');
    if (!btns.length) { return; }
    for (var i = 0; i < btns.length; i++) {
      (function (el, delay) {
        setTimeout(function () { el.classList.remove('shown'); }, delay);
      })(btns[i], (btns.length - 1 - i) * 40);
    }
    if (clearTimer) { clearTimeout(clearTimer); }
    // Buttons leave the layer only after the out-animation completes.
    clearTimer = setTimeout(function () { layer.innerHTML = ''; }, btns.length * 40 + HIDE_MS);
  }

  function showButtons(cfg) {
    if (layer.querySelectorAll('.menu-btn').length) {
      // Re-invocation while visible: hide, then re-show after the
      // out-duration instead of stacking a second menu.
      hideButtons();
      setTimeout(function () { renderButtons(cfg); }, HIDE_MS);
      return;
    }
    renderButtons(cfg);
  }

  function renderButtons(cfg) {
    if (clearTimer) { clearTimeout(clearTimer); clearTimer = null; }
    layer.innerHTML = '';
    var buttons = cfg.buttons || [];
    for (var i = 0; i < buttons.length; i++) {
      var b = buttons[i];
      var el = document.createElement('div');
      el.className = b.close ? 'menu-btn menu-btn-close' : 'menu-btn';
      el.setAttribute('data-button-id', b.id);
      el.title = b.label || '';
      el.textContent = b.glyph || '';
      el.style.left = b.x + 'px';
      el.style.top = b.y + 'px';
      layer.appendChild(el);
      (function (node, delay) {
        setTimeout(function () { node.classList.add('shown'); }, delay);
      })(el, b.delayMs || 0);
    }
  }

  window.addEventListener('message', function (ev) {
    var msg = ev.data;
    if (!msg || typeof msg.type !== 'string') { return; }
    switch (msg.type) {
      case 'HIDE_BUTTONS':
        hideButtons();
        break;
      case 'UPDATE_BUTTON_CONFIG':
        showButtons(msg);
        break;
      default:
        break; // unknown host messages are ignored
    }
  });
})();`
